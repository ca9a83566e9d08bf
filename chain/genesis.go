// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

// Genesis is the process-wide deployment configuration, fixed at startup.
type Genesis struct {
	// Magic identifies this deployment. Every transaction commits to it,
	// so transactions signed for one deployment cannot replay on another.
	Magic uint64 `serialize:"true" json:"magic"`
}

func DefaultGenesis() *Genesis {
	return &Genesis{
		Magic: 1,
	}
}
