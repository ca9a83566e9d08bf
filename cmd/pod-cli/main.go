// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

// "pod-cli" implements the registry client operation interface.
package main

import (
	"fmt"
	"os"

	"github.com/bitdsm/podvm/cmd/pod-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pod-cli failed %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
