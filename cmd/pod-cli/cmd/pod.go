// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bitdsm/podvm/chain"
	"github.com/bitdsm/podvm/client"
	"github.com/bitdsm/podvm/parser"
)

var podCmd = &cobra.Command{
	Use:   "pod [options] <address | owner/btcPublicKey>",
	Short: "Reads pod info",
	Long: `
Reads the pod record at an address, or resolves the pod for an owner and
BTC public key pair.

$ pod-cli pod 0xAbC...
$ pod-cli pod 0xOwner.../02aaaa...aa

`,
	RunE: podFunc,
}

func podFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	cli := client.New(uri)
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	arg := args[0]
	if common.IsHexAddress(arg) {
		addr := common.HexToAddress(arg)
		info, err := cli.Pod(ctx, addr)
		if err != nil {
			return err
		}
		printPod(addr, info)
		return nil
	}

	owner, btcPublicKey := getPodOp(arg)
	addr, exists, info, err := cli.ResolvePod(ctx, owner, btcPublicKey)
	if err != nil {
		return err
	}
	if !exists {
		color.Yellow("no pod at derived address %s", addr.Hex())
		return nil
	}
	printPod(addr, info)
	return nil
}

func printPod(addr common.Address, info *chain.PodInfo) {
	color.Cyan(
		"pod %s: owner=%s operator=%s balance=%d active=%v updated=%v",
		addr.Hex(), info.Owner.Hex(), info.Operator.Hex(), info.Balance, info.Active,
		time.Unix(int64(info.Updated), 0),
	)
}

func getPodOp(arg string) (owner common.Address, btcPublicKey string) {
	splits := strings.SplitN(arg, "/", 2)
	if len(splits) != 2 || !common.IsHexAddress(splits[0]) {
		fmt.Fprintf(os.Stderr, "%q is neither an address nor owner/key", arg)
		os.Exit(128)
	}
	btcPublicKey = splits[1]
	if err := parser.CheckBtcPublicKey(btcPublicKey); err != nil {
		fmt.Fprintf(os.Stderr, "failed to verify btc public key %v", err)
		os.Exit(128)
	}
	return common.HexToAddress(splits[0]), btcPublicKey
}
