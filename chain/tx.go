// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/hashing"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/bitdsm/podvm/tdata"
)

type Transaction struct {
	UnsignedTransaction `serialize:"true" json:"unsignedTransaction"`
	Signature           []byte `serialize:"true" json:"signature"`

	digestHash []byte
	bytes      []byte
	id         ids.ID
	size       uint64
	sender     common.Address
}

func NewTx(utx UnsignedTransaction, sig []byte) *Transaction {
	return &Transaction{
		UnsignedTransaction: utx,
		Signature:           sig,
	}
}

// DigestHash returns the typed-data digest a signer commits to for utx.
func DigestHash(utx UnsignedTransaction) ([]byte, error) {
	return tdata.DigestHash(utx.TypedData())
}

// Init recovers the sender from the signature and caches the serialized
// bytes, digest, and ID. It must be called before Execute.
func (t *Transaction) Init(g *Genesis) error {
	stx, err := Marshal(t)
	if err != nil {
		return err
	}
	t.bytes = stx

	dh, err := DigestHash(t.UnsignedTransaction)
	if err != nil {
		return err
	}
	t.digestHash = dh

	pk, err := DeriveSender(t.digestHash, t.Signature)
	if err != nil {
		return err
	}
	t.sender = crypto.PubkeyToAddress(*pk)

	id, err := ids.ToID(hashing.ComputeHash256(t.bytes))
	if err != nil {
		return err
	}
	t.id = id

	t.size = uint64(len(t.bytes))
	return nil
}

func (t *Transaction) Bytes() []byte { return t.bytes }

func (t *Transaction) Size() uint64 { return t.size }

func (t *Transaction) ID() ids.ID { return t.id }

func (t *Transaction) DigestHash() []byte { return t.digestHash }

func (t *Transaction) Sender() common.Address { return t.sender }

// Execute runs the full transition: magic check, replay check, then the
// operation itself. Callers provide a database whose writes are committed
// only if Execute returns nil, which keeps every operation atomic.
func (t *Transaction) Execute(g *Genesis, db database.Database, blockTime uint64) error {
	if err := t.UnsignedTransaction.ExecuteBase(g); err != nil {
		return err
	}
	has, err := HasTransaction(db, t.id)
	if err != nil {
		return err
	}
	if has {
		return ErrDuplicateTx
	}
	c := &TransactionContext{
		Genesis:   g,
		Database:  db,
		BlockTime: blockTime,
		TxID:      t.id,
		Sender:    t.sender,
	}
	if err := t.UnsignedTransaction.Execute(c); err != nil {
		return err
	}
	return SetTransaction(db, t)
}
