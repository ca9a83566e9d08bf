// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"strconv"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bitdsm/podvm/tdata"
)

var _ UnsignedTransaction = &ConfirmDepositTx{}

// ConfirmDepositTx credits a pod after its owner attests that the backing
// Bitcoin deposit settled. The chain is never observed directly.
type ConfirmDepositTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	// Pod is the derived address of the pod to credit.
	Pod common.Address `serialize:"true" json:"pod"`

	// Amount is the deposit in satoshis. Must be positive.
	Amount uint64 `serialize:"true" json:"amount"`
}

func (d *ConfirmDepositTx) Execute(t *TransactionContext) error {
	i, err := verifyPod(d.Pod, t)
	if err != nil {
		return err
	}
	if !i.Active {
		return ErrPodInactive
	}
	if d.Amount == 0 {
		return ErrInvalidAmount
	}
	i.Balance, err = CheckedAdd(i.Balance, d.Amount)
	if err != nil {
		return err
	}
	i.Updated = t.BlockTime
	return PutPodInfo(t.Database, d.Pod, i)
}

func (d *ConfirmDepositTx) Copy() UnsignedTransaction {
	pod := make([]byte, common.AddressLength)
	copy(pod, d.Pod[:])
	return &ConfirmDepositTx{
		BaseTx: d.BaseTx.Copy(),
		Pod:    common.BytesToAddress(pod),
		Amount: d.Amount,
	}
}

func (d *ConfirmDepositTx) TypedData() *tdata.TypedData {
	return tdata.CreateTypedData(
		d.Magic, ConfirmDeposit,
		[]tdata.Type{
			{Name: tdPod, Type: tdAddress},
			{Name: tdAmount, Type: tdUint64},
			{Name: tdNonce, Type: tdUint64},
		},
		tdata.TypedDataMessage{
			tdPod:    d.Pod.Hex(),
			tdAmount: strconv.FormatUint(d.Amount, 10),
			tdNonce:  strconv.FormatUint(d.Nonce, 10),
		},
	)
}

func (d *ConfirmDepositTx) Activity() *Activity {
	return &Activity{
		Typ:    ConfirmDeposit,
		Pod:    d.Pod.Hex(),
		Amount: d.Amount,
	}
}
