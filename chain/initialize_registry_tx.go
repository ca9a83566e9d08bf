// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"strconv"

	"github.com/bitdsm/podvm/tdata"
)

var _ UnsignedTransaction = &InitializeRegistryTx{}

type InitializeRegistryTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	// MinStakeWeight is the admission floor for operators. Must be positive.
	MinStakeWeight uint64 `serialize:"true" json:"minStakeWeight"`
}

func (i *InitializeRegistryTx) Execute(t *TransactionContext) error {
	if i.MinStakeWeight == 0 {
		return ErrInvalidStakeWeight
	}
	has, err := HasRegistry(t.Database)
	if err != nil {
		return err
	}
	if has {
		return ErrRegistryExists
	}
	return PutRegistryInfo(t.Database, &RegistryInfo{
		Authority:      t.Sender,
		MinStakeWeight: i.MinStakeWeight,
		OperatorCount:  0,
		TotalStake:     0,
	})
}

func (i *InitializeRegistryTx) Copy() UnsignedTransaction {
	return &InitializeRegistryTx{
		BaseTx:         i.BaseTx.Copy(),
		MinStakeWeight: i.MinStakeWeight,
	}
}

func (i *InitializeRegistryTx) TypedData() *tdata.TypedData {
	return tdata.CreateTypedData(
		i.Magic, InitializeRegistry,
		[]tdata.Type{
			{Name: tdMinStakeWeight, Type: tdUint64},
			{Name: tdNonce, Type: tdUint64},
		},
		tdata.TypedDataMessage{
			tdMinStakeWeight: strconv.FormatUint(i.MinStakeWeight, 10),
			tdNonce:          strconv.FormatUint(i.Nonce, 10),
		},
	)
}

func (i *InitializeRegistryTx) Activity() *Activity {
	return &Activity{
		Typ:    InitializeRegistry,
		Amount: i.MinStakeWeight,
	}
}
