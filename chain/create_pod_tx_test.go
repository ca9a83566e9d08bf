// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"strings"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/bitdsm/podvm/parser"
)

func TestCreatePodTx(t *testing.T) {
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
	operatorAuthority := crypto.PubkeyToAddress(priv2.PublicKey)

	db := memdb.New()
	defer db.Close()

	g := DefaultGenesis()
	validKey := "02" + strings.Repeat("a", 64)
	setup := []struct {
		utx    UnsignedTransaction
		sender common.Address
	}{
		{utx: &InitializeRegistryTx{BaseTx: &BaseTx{}, MinStakeWeight: 100}, sender: operatorAuthority},
		{utx: &RegisterOperatorTx{BaseTx: &BaseTx{}, Name: "op1"}, sender: operatorAuthority},
	}
	for i, sv := range setup {
		tc := &TransactionContext{
			Genesis:   g,
			Database:  db,
			BlockTime: 1,
			TxID:      ids.Empty,
			Sender:    sv.sender,
		}
		if err := sv.utx.Execute(tc); err != nil {
			t.Fatalf("setup #%d: %v", i, err)
		}
	}

	tt := []struct {
		tx        *CreatePodTx
		blockTime uint64
		sender    common.Address
		err       error
	}{
		{ // key too short
			tx:        &CreatePodTx{BaseTx: &BaseTx{}, BtcPublicKey: "02abc"},
			blockTime: 2,
			sender:    sender,
			err:       parser.ErrInvalidBtcPublicKey,
		},
		{ // key with a non-hex digit
			tx: &CreatePodTx{
				BaseTx:       &BaseTx{},
				BtcPublicKey: "02" + strings.Repeat("a", 63) + "g",
			},
			blockTime: 2,
			sender:    sender,
			err:       parser.ErrInvalidBtcPublicKey,
		},
		{ // unknown operator reference
			tx: &CreatePodTx{
				BaseTx:       &BaseTx{},
				BtcPublicKey: validKey,
				Operator:     sender,
			},
			blockTime: 2,
			sender:    sender,
			err:       ErrOperatorMissing,
		},
		{ // valid managed pod
			tx: &CreatePodTx{
				BaseTx:       &BaseTx{},
				BtcPublicKey: validKey,
				Operator:     operatorAuthority,
			},
			blockTime: 2,
			sender:    sender,
			err:       nil,
		},
		{ // derived address already occupied
			tx:        &CreatePodTx{BaseTx: &BaseTx{}, BtcPublicKey: validKey},
			blockTime: 3,
			sender:    sender,
			err:       ErrPodExists,
		},
		{ // same key under a different owner derives a different address
			tx:        &CreatePodTx{BaseTx: &BaseTx{}, BtcPublicKey: validKey},
			blockTime: 3,
			sender:    operatorAuthority,
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
		err := tv.tx.Execute(tc)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: tx.Execute err expected %v, got %v", i, tv.err, err)
		}
	}

	addr, err := parser.PodAddress(sender, validKey)
	if err != nil {
		t.Fatal(err)
	}
	pod, exists, err := GetPodInfo(db, addr)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Fatal("pod should exist at the derived address")
	}
	if pod.Owner != sender {
		t.Fatalf("unexpected owner %s", pod.Owner)
	}
	if pod.Operator != operatorAuthority {
		t.Fatalf("unexpected operator %s", pod.Operator)
	}
	if pod.Balance != 0 {
		t.Fatalf("balance should start at zero, got %d", pod.Balance)
	}
	if !pod.Active {
		t.Fatal("pod should be active")
	}
	if pod.Created != 2 || pod.Updated != 2 {
		t.Fatalf("unexpected timestamps %d/%d", pod.Created, pod.Updated)
	}

	// The creation activity reports the allocated address.
	if act := tt[3].tx.Activity(); act.Pod != addr.Hex() {
		t.Fatalf("activity pod expected %s, got %q", addr.Hex(), act.Pod)
	}

	owned, err := GetOwnedPods(db, sender)
	if err != nil {
		t.Fatal(err)
	}
	if len(owned) != 1 {
		t.Fatalf("sender owned pods should = 1, found %d", len(owned))
	}
}

func TestCreatePodInactiveOperator(t *testing.T) {
	t.Parallel()

	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	operatorAuthority := crypto.PubkeyToAddress(priv.PublicKey)

	db := memdb.New()
	defer db.Close()

	g := DefaultGenesis()
	tc := &TransactionContext{
		Genesis:   g,
		Database:  db,
		BlockTime: 1,
		TxID:      ids.Empty,
		Sender:    operatorAuthority,
	}
	if err := (&InitializeRegistryTx{BaseTx: &BaseTx{}, MinStakeWeight: 1}).Execute(tc); err != nil {
		t.Fatal(err)
	}
	if err := (&RegisterOperatorTx{BaseTx: &BaseTx{}, Name: "op1"}).Execute(tc); err != nil {
		t.Fatal(err)
	}

	// Deactivate the operator record directly; no transition deactivates
	// operators yet.
	operator, _, err := GetOperatorInfo(db, operatorAuthority)
	if err != nil {
		t.Fatal(err)
	}
	operator.Active = false
	if err := PutOperatorInfo(db, operator); err != nil {
		t.Fatal(err)
	}

	utx := &CreatePodTx{
		BaseTx:       &BaseTx{},
		BtcPublicKey: "02" + strings.Repeat("b", 64),
		Operator:     operatorAuthority,
	}
	if err := utx.Execute(tc); !errors.Is(err, ErrOperatorInactive) {
		t.Fatalf("expected ErrOperatorInactive, got %v", err)
	}
}
