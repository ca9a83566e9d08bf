// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"strconv"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bitdsm/podvm/parser"
	"github.com/bitdsm/podvm/tdata"
)

var _ UnsignedTransaction = &CreatePodTx{}

type CreatePodTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	// BtcPublicKey is the 66-character hex encoding of the pod's compressed
	// custody key. Its first 8 characters seed the address derivation.
	BtcPublicKey string `serialize:"true" json:"btcPublicKey"`

	// Operator optionally names the operator servicing this pod; the zero
	// address creates an unmanaged pod.
	Operator common.Address `serialize:"true" json:"operator"`

	// addr holds the derived pod address once Execute allocates it.
	addr common.Address
}

func (c *CreatePodTx) Execute(t *TransactionContext) error {
	addr, err := parser.PodAddress(t.Sender, c.BtcPublicKey)
	if err != nil {
		return err
	}

	// The derived address is the allocation slot; an occupied slot is an
	// allocation conflict.
	exists, err := HasPod(t.Database, addr)
	if err != nil {
		return err
	}
	if exists {
		return ErrPodExists
	}

	if c.Operator != zeroAddress {
		operator, has, err := GetOperatorInfo(t.Database, c.Operator)
		if err != nil {
			return err
		}
		if !has {
			return ErrOperatorMissing
		}
		if !operator.Active {
			return ErrOperatorInactive
		}
	}

	c.addr = addr
	return PutPodInfo(t.Database, addr, &PodInfo{
		Owner:        t.Sender,
		Operator:     c.Operator,
		BtcPublicKey: c.BtcPublicKey,
		Active:       true,
		Balance:      0,
		Created:      t.BlockTime,
		Updated:      t.BlockTime,
	})
}

func (c *CreatePodTx) Copy() UnsignedTransaction {
	operator := make([]byte, common.AddressLength)
	copy(operator, c.Operator[:])
	return &CreatePodTx{
		BaseTx:       c.BaseTx.Copy(),
		BtcPublicKey: c.BtcPublicKey,
		Operator:     common.BytesToAddress(operator),
	}
}

func (c *CreatePodTx) TypedData() *tdata.TypedData {
	return tdata.CreateTypedData(
		c.Magic, CreatePod,
		[]tdata.Type{
			{Name: tdBtcPublicKey, Type: tdString},
			{Name: tdOperator, Type: tdAddress},
			{Name: tdNonce, Type: tdUint64},
		},
		tdata.TypedDataMessage{
			tdBtcPublicKey: c.BtcPublicKey,
			tdOperator:     c.Operator.Hex(),
			tdNonce:        strconv.FormatUint(c.Nonce, 10),
		},
	)
}

func (c *CreatePodTx) Activity() *Activity {
	return &Activity{
		Typ:      CreatePod,
		Pod:      c.addr.Hex(),
		Operator: c.Operator.Hex(),
	}
}
