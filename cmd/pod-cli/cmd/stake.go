// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bitdsm/podvm/chain"
	"github.com/bitdsm/podvm/client"
)

var stakeCmd = &cobra.Command{
	Use:   "stake [options] <amount>",
	Short: "Adds stake to the signer's operator record",
	RunE:  stakeFunc,
}

func stakeFunc(cmd *cobra.Command, args []string) error {
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}

	amount := getStakeOp(args)
	cli := client.New(uri)
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	utx := &chain.AddStakeTx{
		BaseTx: &chain.BaseTx{},
		Amount: amount,
	}

	if _, err = client.SignIssueTx(ctx, cli, utx, priv, client.WithPollTx()); err != nil {
		return err
	}

	addr := crypto.PubkeyToAddress(priv.PublicKey)
	operator, err := cli.Operator(ctx, addr)
	if err != nil {
		return err
	}
	color.Cyan("operator %q stake=%d", operator.Name, operator.StakeWeight)
	return nil
}

func getStakeOp(args []string) (amount uint64) {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "expected exactly 1 argument, got %d", len(args))
		os.Exit(128)
	}

	a, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse amount %v", err)
		os.Exit(128)
	}

	return a
}
