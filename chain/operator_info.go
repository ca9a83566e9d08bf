// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"
)

// OperatorInfo is a registered participant. One record per authority address;
// Authority and Created never change after registration.
type OperatorInfo struct {
	Authority common.Address `serialize:"true" json:"authority"`
	Name      string         `serialize:"true" json:"name"`
	Metadata  string         `serialize:"true" json:"metadata"`

	// BtcPublicKey is the operator's hex-encoded compressed key; empty when
	// the operator did not supply one.
	BtcPublicKey string `serialize:"true" json:"btcPublicKey,omitempty"`

	StakeWeight uint64 `serialize:"true" json:"stakeWeight"`
	Active      bool   `serialize:"true" json:"active"`
	Created     uint64 `serialize:"true" json:"created"`
	Updated     uint64 `serialize:"true" json:"updated"`
}
