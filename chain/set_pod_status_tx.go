// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"strconv"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bitdsm/podvm/tdata"
)

var _ UnsignedTransaction = &SetPodStatusTx{}

// SetPodStatusTx toggles a pod's lifecycle flag. Deactivation gates deposits;
// pods are never destroyed.
type SetPodStatusTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	Pod    common.Address `serialize:"true" json:"pod"`
	Active bool           `serialize:"true" json:"active"`
}

func (s *SetPodStatusTx) Execute(t *TransactionContext) error {
	i, err := verifyPod(s.Pod, t)
	if err != nil {
		return err
	}
	i.Active = s.Active
	i.Updated = t.BlockTime
	return PutPodInfo(t.Database, s.Pod, i)
}

func (s *SetPodStatusTx) Copy() UnsignedTransaction {
	pod := make([]byte, common.AddressLength)
	copy(pod, s.Pod[:])
	return &SetPodStatusTx{
		BaseTx: s.BaseTx.Copy(),
		Pod:    common.BytesToAddress(pod),
		Active: s.Active,
	}
}

func (s *SetPodStatusTx) TypedData() *tdata.TypedData {
	return tdata.CreateTypedData(
		s.Magic, SetPodStatus,
		[]tdata.Type{
			{Name: tdPod, Type: tdAddress},
			{Name: tdActive, Type: tdBool},
			{Name: tdNonce, Type: tdUint64},
		},
		tdata.TypedDataMessage{
			tdPod:    s.Pod.Hex(),
			tdActive: s.Active,
			tdNonce:  strconv.FormatUint(s.Nonce, 10),
		},
	)
}

func (s *SetPodStatusTx) Activity() *Activity {
	return &Activity{
		Typ:    SetPodStatus,
		Pod:    s.Pod.Hex(),
		Active: s.Active,
	}
}
