// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bitdsm/podvm/client"
	"github.com/bitdsm/podvm/parser"
)

var podsCmd = &cobra.Command{
	Use:   "pods [options] [owner]",
	Short: "Lists all pods owned by an address (defaults to the signer)",
	RunE:  podsFunc,
}

func podsFunc(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("expected at most 1 argument, got %d", len(args))
	}

	var owner common.Address
	if len(args) == 1 {
		if !common.IsHexAddress(args[0]) {
			return fmt.Errorf("%q is not a valid address", args[0])
		}
		owner = common.HexToAddress(args[0])
	} else {
		priv, err := crypto.LoadECDSA(privateKeyFile)
		if err != nil {
			return err
		}
		owner = crypto.PubkeyToAddress(priv.PublicKey)
	}

	cli := client.New(uri)
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	pods, err := cli.OwnedPods(ctx, owner)
	if err != nil {
		return err
	}
	if len(pods) == 0 {
		color.Yellow("no pods owned by %s", owner.Hex())
		return nil
	}
	for _, pod := range pods {
		addr, err := parser.PodAddress(pod.Owner, pod.BtcPublicKey)
		if err != nil {
			return err
		}
		color.Cyan(
			"pod %s: btcKey=%s balance=%d active=%v",
			addr.Hex(), pod.BtcPublicKey, pod.Balance, pod.Active,
		)
	}
	return nil
}
