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

func TestRegisterOperatorTx(t *testing.T) {
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
	validKey := "02" + strings.Repeat("a", 64)
	tt := []struct {
		utx       UnsignedTransaction
		blockTime uint64
		sender    common.Address
		err       error
	}{
		{ // no registry yet
			utx:       &RegisterOperatorTx{BaseTx: &BaseTx{}, Name: "op1"},
			blockTime: 1,
			sender:    sender,
			err:       ErrRegistryMissing,
		},
		{
			utx:       &InitializeRegistryTx{BaseTx: &BaseTx{}, MinStakeWeight: 100},
			blockTime: 1,
			sender:    sender,
			err:       nil,
		},
		{ // empty name
			utx:       &RegisterOperatorTx{BaseTx: &BaseTx{}, Name: ""},
			blockTime: 2,
			sender:    sender,
			err:       parser.ErrNameEmpty,
		},
		{ // name too long
			utx:       &RegisterOperatorTx{BaseTx: &BaseTx{}, Name: strings.Repeat("a", parser.MaxNameSize+1)},
			blockTime: 2,
			sender:    sender,
			err:       parser.ErrNameTooLong,
		},
		{ // metadata too big
			utx: &RegisterOperatorTx{
				BaseTx:   &BaseTx{},
				Name:     "op1",
				Metadata: strings.Repeat("m", parser.MaxMetadataSize+1),
			},
			blockTime: 2,
			sender:    sender,
			err:       parser.ErrMetadataTooBig,
		},
		{ // malformed optional key
			utx: &RegisterOperatorTx{
				BaseTx:       &BaseTx{},
				Name:         "op1",
				BtcPublicKey: "02abc",
			},
			blockTime: 2,
			sender:    sender,
			err:       parser.ErrInvalidBtcPublicKey,
		},
		{ // valid registration with key
			utx: &RegisterOperatorTx{
				BaseTx:       &BaseTx{},
				Name:         "op1",
				Metadata:     "meta",
				BtcPublicKey: validKey,
			},
			blockTime: 2,
			sender:    sender,
			err:       nil,
		},
		{ // one record per authority
			utx:       &RegisterOperatorTx{BaseTx: &BaseTx{}, Name: "again"},
			blockTime: 3,
			sender:    sender,
			err:       ErrOperatorExists,
		},
		{ // second authority, no key
			utx:       &RegisterOperatorTx{BaseTx: &BaseTx{}, Name: "op2"},
			blockTime: 3,
			sender:    sender2,
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

	operator, exists, err := GetOperatorInfo(db, sender)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Fatal("operator should exist")
	}
	if operator.Name != "op1" || operator.Metadata != "meta" {
		t.Fatalf("unexpected operator record %+v", operator)
	}
	if operator.BtcPublicKey != validKey {
		t.Fatalf("unexpected btc public key %q", operator.BtcPublicKey)
	}
	if !operator.Active {
		t.Fatal("operator should be active")
	}
	if operator.Created != 2 || operator.Updated != 2 {
		t.Fatalf("unexpected timestamps %d/%d", operator.Created, operator.Updated)
	}

	registry, _, err := GetRegistryInfo(db)
	if err != nil {
		t.Fatal(err)
	}
	if registry.OperatorCount != 2 {
		t.Fatalf("operator count expected 2, got %d", registry.OperatorCount)
	}

	operators, err := GetAllOperators(db)
	if err != nil {
		t.Fatal(err)
	}
	if len(operators) != 2 {
		t.Fatalf("expected 2 operators, got %d", len(operators))
	}
}
