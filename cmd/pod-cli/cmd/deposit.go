// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"

	"github.com/bitdsm/podvm/chain"
	"github.com/bitdsm/podvm/client"
)

var depositCmd = &cobra.Command{
	Use:   "deposit [options] <pod> <amount>",
	Short: "Confirms a deposit into the given pod",
	Long: `
Credits the pod balance by the given amount. Only the pod owner may
confirm deposits, and the pod must be active.

$ pod-cli deposit 0xAbC... 50

`,
	RunE: depositFunc,
}

func depositFunc(cmd *cobra.Command, args []string) error {
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}

	pod, amount := getDepositOp(args)
	cli := client.New(uri)

	utx := &chain.ConfirmDepositTx{
		BaseTx: &chain.BaseTx{},
		Pod:    pod,
		Amount: amount,
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	opts := []client.OpOption{client.WithPollTx(), client.WithPod(pod)}
	if _, err = client.SignIssueTx(ctx, cli, utx, priv, opts...); err != nil {
		return err
	}
	return nil
}

func getDepositOp(args []string) (pod common.Address, amount uint64) {
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "expected exactly 2 arguments, got %d", len(args))
		os.Exit(128)
	}

	if !common.IsHexAddress(args[0]) {
		fmt.Fprintf(os.Stderr, "%q is not a valid address", args[0])
		os.Exit(128)
	}
	pod = common.HexToAddress(args[0])

	a, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse amount %v", err)
		os.Exit(128)
	}

	return pod, a
}
