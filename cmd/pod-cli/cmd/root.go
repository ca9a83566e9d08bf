// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

// "pod-cli" implements the registry client operation interface.
package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

const requestTimeout = 30 * time.Second

var (
	privateKeyFile string
	uri            string

	rootCmd = &cobra.Command{
		Use:        "pod-cli",
		Short:      "Pod registry CLI",
		SuggestFor: []string{"pod-cli", "podcli", "podctl"},
	}
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		createCmd,
		initRegistryCmd,
		registerCmd,
		stakeCmd,
		createPodCmd,
		depositCmd,
		setStatusCmd,
		infoCmd,
		podCmd,
		podsCmd,
		activityCmd,
	)

	rootCmd.PersistentFlags().StringVar(
		&privateKeyFile,
		"private-key-file",
		".pod-cli-pk",
		"private key file path",
	)
	rootCmd.PersistentFlags().StringVar(
		&uri,
		"endpoint",
		"http://127.0.0.1:9090",
		"RPC endpoint for the registry server",
	)
}

func Execute() error {
	return rootCmd.Execute()
}
