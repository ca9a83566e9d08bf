// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bitdsm/podvm/client"
)

var activityCmd = &cobra.Command{
	Use:   "activity [options]",
	Short: "Views recent activity on the registry",
	RunE:  activityFunc,
}

func activityFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("expected exactly 0 arguments, got %d", len(args))
	}
	cli := client.New(uri)
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	activity, err := cli.Activity(ctx)
	if err != nil {
		return err
	}
	return client.PPActivity(activity)
}
