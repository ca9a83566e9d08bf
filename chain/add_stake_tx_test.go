// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"math"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

func TestAddStakeTx(t *testing.T) {
	t.Parallel()

	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	sender := crypto.PubkeyToAddress(priv.PublicKey)

	priv2, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	sender2 := crypto.PubkeyToAddress(priv2.PublicKey)

	db := memdb.New()
	defer db.Close()

	g := DefaultGenesis()
	tt := []struct {
		utx       UnsignedTransaction
		blockTime uint64
		sender    common.Address
		err       error
	}{
		{ // sender is not a registered operator
			utx:       &AddStakeTx{BaseTx: &BaseTx{}, Amount: 10},
			blockTime: 1,
			sender:    sender,
			err:       ErrOperatorMissing,
		},
		{
			utx:       &InitializeRegistryTx{BaseTx: &BaseTx{}, MinStakeWeight: 100},
			blockTime: 1,
			sender:    sender,
			err:       nil,
		},
		{
			utx:       &RegisterOperatorTx{BaseTx: &BaseTx{}, Name: "op1"},
			blockTime: 1,
			sender:    sender,
			err:       nil,
		},
		{
			utx:       &RegisterOperatorTx{BaseTx: &BaseTx{}, Name: "op2"},
			blockTime: 1,
			sender:    sender2,
			err:       nil,
		},
		{ // zero amount
			utx:       &AddStakeTx{BaseTx: &BaseTx{}, Amount: 0},
			blockTime: 2,
			sender:    sender,
			err:       ErrInvalidAmount,
		},
		{
			utx:       &AddStakeTx{BaseTx: &BaseTx{}, Amount: 60},
			blockTime: 2,
			sender:    sender,
			err:       nil,
		},
		{
			utx:       &AddStakeTx{BaseTx: &BaseTx{}, Amount: 40},
			blockTime: 3,
			sender:    sender2,
			err:       nil,
		},
		{ // stake keeps accruing on the same operator
			utx:       &AddStakeTx{BaseTx: &BaseTx{}, Amount: 15},
			blockTime: 4,
			sender:    sender,
			err:       nil,
		},
	}
	for i, tv := range tt {
		tc := &TransactionContext{
			Genesis:   g,
			Database:  db,
			BlockTime: tv.blockTime,
			TxID:      ids.Empty,
			Sender:    tv.sender,
		}
		err := tv.utx.Execute(tc)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: tx.Execute err expected %v, got %v", i, tv.err, err)
		}
	}

	operator, _, err := GetOperatorInfo(db, sender)
	if err != nil {
		t.Fatal(err)
	}
	if operator.StakeWeight != 75 {
		t.Fatalf("stake weight expected 75, got %d", operator.StakeWeight)
	}
	if operator.Updated != 4 {
		t.Fatalf("last update expected 4, got %d", operator.Updated)
	}

	registry, _, err := GetRegistryInfo(db)
	if err != nil {
		t.Fatal(err)
	}
	if registry.TotalStake != 115 {
		t.Fatalf("total stake expected 115, got %d", registry.TotalStake)
	}
}

func TestAddStakeOverflow(t *testing.T) {
	t.Parallel()

	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	sender := crypto.PubkeyToAddress(priv.PublicKey)

	db := memdb.New()
	defer db.Close()

	g := DefaultGenesis()
	tc := &TransactionContext{
		Genesis:   g,
		Database:  db,
		BlockTime: 1,
		TxID:      ids.Empty,
		Sender:    sender,
	}
	if err := (&InitializeRegistryTx{BaseTx: &BaseTx{}, MinStakeWeight: 1}).Execute(tc); err != nil {
		t.Fatal(err)
	}
	if err := (&RegisterOperatorTx{BaseTx: &BaseTx{}, Name: "op1"}).Execute(tc); err != nil {
		t.Fatal(err)
	}

	operator, _, err := GetOperatorInfo(db, sender)
	if err != nil {
		t.Fatal(err)
	}
	operator.StakeWeight = math.MaxUint64 - 1
	if err := PutOperatorInfo(db, operator); err != nil {
		t.Fatal(err)
	}

	tc.BlockTime = 2
	utx := &AddStakeTx{BaseTx: &BaseTx{}, Amount: 5}
	if err := utx.Execute(tc); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}

	operator, _, err = GetOperatorInfo(db, sender)
	if err != nil {
		t.Fatal(err)
	}
	if operator.StakeWeight != math.MaxUint64-1 {
		t.Fatalf("stake weight must be unchanged after overflow, got %d", operator.StakeWeight)
	}
	registry, _, err := GetRegistryInfo(db)
	if err != nil {
		t.Fatal(err)
	}
	if registry.TotalStake != 0 {
		t.Fatalf("total stake must be unchanged after overflow, got %d", registry.TotalStake)
	}
}
