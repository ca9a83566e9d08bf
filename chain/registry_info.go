// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"
)

// RegistryInfo is the singleton registry record. OperatorCount and TotalStake
// are only ever incremented (operator removal and slashing are not modeled).
type RegistryInfo struct {
	Authority      common.Address `serialize:"true" json:"authority"`
	MinStakeWeight uint64         `serialize:"true" json:"minStakeWeight"`
	OperatorCount  uint64         `serialize:"true" json:"operatorCount"`
	TotalStake     uint64         `serialize:"true" json:"totalStake"`
}
