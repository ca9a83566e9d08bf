// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bitdsm/podvm/chain"
	"github.com/bitdsm/podvm/client"
	"github.com/bitdsm/podvm/parser"
)

var (
	registerMetadata     string
	registerBtcPublicKey string
)

func init() {
	registerCmd.PersistentFlags().StringVar(
		&registerMetadata,
		"metadata",
		"",
		"operator metadata (endpoint URL, contact, etc.)",
	)
	registerCmd.PersistentFlags().StringVar(
		&registerBtcPublicKey,
		"btc-public-key",
		"",
		"optional compressed BTC public key (66 hex chars)",
	)
}

var registerCmd = &cobra.Command{
	Use:   "register [options] <name>",
	Short: "Registers the signer as an operator",
	Long: `
Registers the signer as an operator under the given name. One operator
record per authority.

$ pod-cli register op1 --metadata "https://op1.example.com"

`,
	RunE: registerFunc,
}

func registerFunc(cmd *cobra.Command, args []string) error {
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}

	name := getRegisterOp(args)
	cli := client.New(uri)
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	utx := &chain.RegisterOperatorTx{
		BaseTx:       &chain.BaseTx{},
		Name:         name,
		Metadata:     registerMetadata,
		BtcPublicKey: registerBtcPublicKey,
	}

	if _, err = client.SignIssueTx(ctx, cli, utx, priv, client.WithPollTx()); err != nil {
		return err
	}

	addr := crypto.PubkeyToAddress(priv.PublicKey)
	operator, err := cli.Operator(ctx, addr)
	if err != nil {
		return err
	}
	color.Cyan("registered operator %q authority=%s stake=%d", operator.Name, operator.Authority.Hex(), operator.StakeWeight)
	return nil
}

func getRegisterOp(args []string) (name string) {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "expected exactly 1 argument, got %d", len(args))
		os.Exit(128)
	}

	name = args[0]

	// check here first before issuing in case the name is empty
	if err := parser.CheckName(name); err != nil {
		fmt.Fprintf(os.Stderr, "failed to verify name %v", err)
		os.Exit(128)
	}

	return name
}
