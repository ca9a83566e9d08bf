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

var setStatusCmd = &cobra.Command{
	Use:   "set-status [options] <pod> <true|false>",
	Short: "Activates or deactivates the given pod",
	RunE:  setStatusFunc,
}

func setStatusFunc(cmd *cobra.Command, args []string) error {
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}

	pod, active := getSetStatusOp(args)
	cli := client.New(uri)
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	utx := &chain.SetPodStatusTx{
		BaseTx: &chain.BaseTx{},
		Pod:    pod,
		Active: active,
	}

	opts := []client.OpOption{client.WithPollTx(), client.WithPod(pod)}
	if _, err = client.SignIssueTx(ctx, cli, utx, priv, opts...); err != nil {
		return err
	}
	return nil
}

func getSetStatusOp(args []string) (pod common.Address, active bool) {
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "expected exactly 2 arguments, got %d", len(args))
		os.Exit(128)
	}

	if !common.IsHexAddress(args[0]) {
		fmt.Fprintf(os.Stderr, "%q is not a valid address", args[0])
		os.Exit(128)
	}
	pod = common.HexToAddress(args[0])

	b, err := strconv.ParseBool(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse status %v", err)
		os.Exit(128)
	}

	return pod, b
}
