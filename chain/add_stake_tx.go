// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"strconv"

	"github.com/bitdsm/podvm/tdata"
)

var _ UnsignedTransaction = &AddStakeTx{}

// AddStakeTx accrues stake to the sender's operator record and to the
// registry-wide total. Neither aggregate ever decreases.
type AddStakeTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Amount uint64 `serialize:"true" json:"amount"`
}

func (a *AddStakeTx) Execute(t *TransactionContext) error {
	operator, has, err := GetOperatorInfo(t.Database, t.Sender)
	if err != nil {
		return err
	}
	if !has {
		return ErrOperatorMissing
	}
	if !operator.Active {
		return ErrOperatorInactive
	}
	if a.Amount == 0 {
		return ErrInvalidAmount
	}
	registry, has, err := GetRegistryInfo(t.Database)
	if err != nil {
		return err
	}
	if !has {
		return ErrRegistryMissing
	}

	operator.StakeWeight, err = CheckedAdd(operator.StakeWeight, a.Amount)
	if err != nil {
		return err
	}
	registry.TotalStake, err = CheckedAdd(registry.TotalStake, a.Amount)
	if err != nil {
		return err
	}
	operator.Updated = t.BlockTime
	if err := PutOperatorInfo(t.Database, operator); err != nil {
		return err
	}
	return PutRegistryInfo(t.Database, registry)
}

func (a *AddStakeTx) Copy() UnsignedTransaction {
	return &AddStakeTx{
		BaseTx: a.BaseTx.Copy(),
		Amount: a.Amount,
	}
}

func (a *AddStakeTx) TypedData() *tdata.TypedData {
	return tdata.CreateTypedData(
		a.Magic, AddStake,
		[]tdata.Type{
			{Name: tdAmount, Type: tdUint64},
			{Name: tdNonce, Type: tdUint64},
		},
		tdata.TypedDataMessage{
			tdAmount: strconv.FormatUint(a.Amount, 10),
			tdNonce:  strconv.FormatUint(a.Nonce, 10),
		},
	)
}

func (a *AddStakeTx) Activity() *Activity {
	return &Activity{
		Typ:    AddStake,
		Amount: a.Amount,
	}
}
