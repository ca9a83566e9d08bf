// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitdsm/podvm/tdata"
)

// TransactionContext is everything a transition handler may consult: the
// deployment config, the state it mutates, the host-supplied wall clock, and
// the recovered signer identity.
type TransactionContext struct {
	Genesis  *Genesis
	Database database.Database

	BlockTime uint64
	TxID      ids.ID
	Sender    common.Address
}

type UnsignedTransaction interface {
	Copy() UnsignedTransaction

	GetMagic() uint64
	SetMagic(uint64)
	GetNonce() uint64
	SetNonce(uint64)

	ExecuteBase(*Genesis) error
	Execute(*TransactionContext) error
	TypedData() *tdata.TypedData
	Activity() *Activity
}
