// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"strconv"

	"github.com/bitdsm/podvm/parser"
	"github.com/bitdsm/podvm/tdata"
)

var _ UnsignedTransaction = &RegisterOperatorTx{}

type RegisterOperatorTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	// Name must be 1 to 32 characters.
	Name string `serialize:"true" json:"name"`

	// Metadata is free-form operator configuration, bounded in size.
	Metadata string `serialize:"true" json:"metadata"`

	// BtcPublicKey is optional; when present it must be a 66-character
	// hex-encoded compressed key.
	BtcPublicKey string `serialize:"true" json:"btcPublicKey"`
}

func (r *RegisterOperatorTx) Execute(t *TransactionContext) error {
	if err := parser.CheckName(r.Name); err != nil {
		return err
	}
	if err := parser.CheckMetadata(r.Metadata); err != nil {
		return err
	}
	if len(r.BtcPublicKey) > 0 {
		if err := parser.CheckBtcPublicKey(r.BtcPublicKey); err != nil {
			return err
		}
	}
	registry, has, err := GetRegistryInfo(t.Database)
	if err != nil {
		return err
	}
	if !has {
		return ErrRegistryMissing
	}
	exists, err := HasOperator(t.Database, t.Sender)
	if err != nil {
		return err
	}
	if exists {
		return ErrOperatorExists
	}

	// The count increment and the record write land in the same commit, so
	// each registration is counted exactly once.
	registry.OperatorCount, err = CheckedAdd(registry.OperatorCount, 1)
	if err != nil {
		return err
	}
	if err := PutRegistryInfo(t.Database, registry); err != nil {
		return err
	}
	return PutOperatorInfo(t.Database, &OperatorInfo{
		Authority:    t.Sender,
		Name:         r.Name,
		Metadata:     r.Metadata,
		BtcPublicKey: r.BtcPublicKey,
		StakeWeight:  0,
		Active:       true,
		Created:      t.BlockTime,
		Updated:      t.BlockTime,
	})
}

func (r *RegisterOperatorTx) Copy() UnsignedTransaction {
	return &RegisterOperatorTx{
		BaseTx:       r.BaseTx.Copy(),
		Name:         r.Name,
		Metadata:     r.Metadata,
		BtcPublicKey: r.BtcPublicKey,
	}
}

func (r *RegisterOperatorTx) TypedData() *tdata.TypedData {
	return tdata.CreateTypedData(
		r.Magic, RegisterOperator,
		[]tdata.Type{
			{Name: tdName, Type: tdString},
			{Name: tdMetadata, Type: tdString},
			{Name: tdBtcPublicKey, Type: tdString},
			{Name: tdNonce, Type: tdUint64},
		},
		tdata.TypedDataMessage{
			tdName:         r.Name,
			tdMetadata:     r.Metadata,
			tdBtcPublicKey: r.BtcPublicKey,
			tdNonce:        strconv.FormatUint(r.Nonce, 10),
		},
	)
}

func (r *RegisterOperatorTx) Activity() *Activity {
	return &Activity{
		Typ:  RegisterOperator,
		Name: r.Name,
	}
}
