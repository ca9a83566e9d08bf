// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

// "podvm" implements the registry server daemon.
package cmd

import (
	"os"
	"strings"

	log "github.com/inconshreveable/log15"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFile string

	rootCmd = &cobra.Command{
		Use:        "podvm",
		Short:      "Pod registry server",
		SuggestFor: []string{"podvm", "pod-vm"},
	}
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		runCmd,
		genesisCmd,
		versionCmd,
	)

	rootCmd.PersistentFlags().StringVar(
		&configFile,
		"config",
		"",
		"config file path (optional)",
	)
	rootCmd.PersistentFlags().String(
		"log-level",
		"info",
		"log level (debug, info, warn, error)",
	)
	if err := viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		panic(err)
	}

	viper.SetEnvPrefix("podvm")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	cobra.OnInitialize(func() {
		if configFile != "" {
			viper.SetConfigFile(configFile)
			if err := viper.ReadInConfig(); err != nil {
				log.Error("cannot read config file", "path", configFile, "err", err)
				os.Exit(1)
			}
		}
		lvl, err := log.LvlFromString(viper.GetString("log-level"))
		if err != nil {
			log.Error("invalid log level", "err", err)
			os.Exit(1)
		}
		log.Root().SetHandler(log.LvlFilterHandler(lvl, log.StreamHandler(os.Stderr, log.TerminalFormat())))
	})
}

func Execute() error {
	return rootCmd.Execute()
}
