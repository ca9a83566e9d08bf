// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

// "podvm" runs the registry server.
package main

import (
	"fmt"
	"os"

	"github.com/bitdsm/podvm/cmd/podvm/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "podvm failed %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
