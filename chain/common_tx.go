// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bitdsm/podvm/parser"
)

var zeroAddress common.Address

func (t *TransactionContext) authorized(owner common.Address) bool {
	return bytes.Equal(owner[:], t.Sender[:])
}

// verifyPod loads the pod at addr and binds the supplied account to its
// recorded owner: the address is recomputed from (owner, key seed) and the
// request is rejected on mismatch, then the sender must be that owner.
func verifyPod(addr common.Address, t *TransactionContext) (*PodInfo, error) {
	i, has, err := GetPodInfo(t.Database, addr)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, ErrPodMissing
	}
	derived, err := parser.PodAddress(i.Owner, i.BtcPublicKey)
	if err != nil {
		return nil, err
	}
	if derived != addr {
		return nil, ErrAddressMismatch
	}
	if !t.authorized(i.Owner) {
		return nil, ErrUnauthorized
	}
	return i, nil
}
