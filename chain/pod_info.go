// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"
)

// PodInfo is a custodial balance account stored at the address derived from
// (Owner, BtcPublicKey seed). Owner, Operator, BtcPublicKey, and Created are
// immutable after creation; Balance only grows through confirmed deposits.
type PodInfo struct {
	Owner common.Address `serialize:"true" json:"owner"`

	// Operator services this pod; the zero address marks an unmanaged pod.
	Operator common.Address `serialize:"true" json:"operator,omitempty"`

	BtcPublicKey string `serialize:"true" json:"btcPublicKey"`
	Active       bool   `serialize:"true" json:"active"`
	Balance      uint64 `serialize:"true" json:"balance"`
	Created      uint64 `serialize:"true" json:"created"`
	Updated      uint64 `serialize:"true" json:"updated"`
}
