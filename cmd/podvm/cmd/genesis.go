// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bitdsm/podvm/chain"
)

var (
	genesisFile string

	magic uint64
)

func init() {
	genesisCmd.PersistentFlags().StringVar(
		&genesisFile,
		"genesis-file",
		"genesis.json",
		"genesis file path",
	)
}

var genesisCmd = &cobra.Command{
	Use:   "genesis [magic] [options]",
	Short: "Creates a new genesis in the default location",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("invalid args")
		}

		m, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}
		magic = m
		if magic == 0 {
			return chain.ErrInvalidMagic
		}

		return nil
	},
	RunE: genesisFunc,
}

func genesisFunc(cmd *cobra.Command, args []string) error {
	genesis := chain.DefaultGenesis()
	genesis.Magic = magic

	b, err := json.MarshalIndent(genesis, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(genesisFile, b, 0o644); err != nil {
		return err
	}
	color.Green("created genesis and saved to %s", genesisFile)
	return nil
}
