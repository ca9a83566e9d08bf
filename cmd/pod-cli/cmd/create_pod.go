// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"

	"github.com/bitdsm/podvm/chain"
	"github.com/bitdsm/podvm/client"
	"github.com/bitdsm/podvm/parser"
)

var createPodOperator string

func init() {
	createPodCmd.PersistentFlags().StringVar(
		&createPodOperator,
		"operator",
		"",
		"optional operator authority to manage the pod",
	)
}

var createPodCmd = &cobra.Command{
	Use:   "create-pod [options] <btcPublicKey>",
	Short: "Creates a pod at the address derived from the signer and key",
	Long: `
Creates a pod for the given compressed BTC public key. The pod address is
derived from the signer address and the key, so the same pair always maps
to the same pod.

$ pod-cli create-pod 02aaaa...aa
$ pod-cli create-pod 02aaaa...aa --operator 0xAbC...

`,
	RunE: createPodFunc,
}

func createPodFunc(cmd *cobra.Command, args []string) error {
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}

	btcPublicKey := getCreatePodOp(args)
	cli := client.New(uri)

	utx := &chain.CreatePodTx{
		BaseTx:       &chain.BaseTx{},
		BtcPublicKey: btcPublicKey,
		Operator:     common.HexToAddress(createPodOperator),
	}

	owner := crypto.PubkeyToAddress(priv.PublicKey)
	podAddr, err := parser.PodAddress(owner, btcPublicKey)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	opts := []client.OpOption{client.WithPollTx(), client.WithPod(podAddr)}
	if _, err = client.SignIssueTx(ctx, cli, utx, priv, opts...); err != nil {
		return err
	}
	return nil
}

func getCreatePodOp(args []string) (btcPublicKey string) {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "expected exactly 1 argument, got %d", len(args))
		os.Exit(128)
	}

	btcPublicKey = args[0]
	if err := parser.CheckBtcPublicKey(btcPublicKey); err != nil {
		fmt.Fprintf(os.Stderr, "failed to verify btc public key %v", err)
		os.Exit(128)
	}

	return btcPublicKey
}
