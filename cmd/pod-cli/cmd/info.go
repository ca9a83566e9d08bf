// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bitdsm/podvm/client"
)

var infoCmd = &cobra.Command{
	Use:   "info [options]",
	Short: "Reads the registry info and all operators",
	RunE:  infoFunc,
}

func infoFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("expected exactly 0 arguments, got %d", len(args))
	}
	cli := client.New(uri)
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	registry, err := cli.Registry(ctx)
	if err != nil {
		return err
	}

	color.Cyan(
		"registry: authority=%s minStakeWeight=%d operators=%d totalStake=%d",
		registry.Authority.Hex(), registry.MinStakeWeight, registry.OperatorCount, registry.TotalStake,
	)

	operators, err := cli.Operators(ctx)
	if err != nil {
		return err
	}
	for _, operator := range operators {
		color.Yellow(
			"operator %q: authority=%s stake=%d active=%v",
			operator.Name, operator.Authority.Hex(), operator.StakeWeight, operator.Active,
		)
	}
	return nil
}
