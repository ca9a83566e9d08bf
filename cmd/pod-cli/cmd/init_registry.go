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

var initRegistryCmd = &cobra.Command{
	Use:   "init-registry [options] <minStakeWeight>",
	Short: "Initializes the registry singleton",
	Long: `
Initializes the registry with the given minimum stake weight. The signer
becomes the registry authority. Fails if the registry already exists.

$ pod-cli init-registry 100

`,
	RunE: initRegistryFunc,
}

func initRegistryFunc(cmd *cobra.Command, args []string) error {
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}

	minStakeWeight := getInitRegistryOp(args)
	cli := client.New(uri)
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	utx := &chain.InitializeRegistryTx{
		BaseTx:         &chain.BaseTx{},
		MinStakeWeight: minStakeWeight,
	}

	if _, err = client.SignIssueTx(ctx, cli, utx, priv, client.WithPollTx()); err != nil {
		return err
	}

	registry, err := cli.Registry(ctx)
	if err != nil {
		return err
	}
	color.Cyan("registry initialized: authority=%s minStakeWeight=%d", registry.Authority.Hex(), registry.MinStakeWeight)
	return nil
}

func getInitRegistryOp(args []string) (minStakeWeight uint64) {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "expected exactly 1 argument, got %d", len(args))
		os.Exit(128)
	}

	w, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse stake weight %v", err)
		os.Exit(128)
	}

	return w
}
