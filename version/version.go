// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

// Package version defines version variables.
package version

import "github.com/ava-labs/avalanchego/version"

var Version = version.NewDefaultVersion(0, 1, 0)
