// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"context"
	"crypto/ecdsa"
	"crypto/rand"
	"encoding/binary"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"

	"github.com/bitdsm/podvm/chain"
)

// Signs and issues the transaction.
func SignIssueTx(
	ctx context.Context,
	cli Client,
	utx chain.UnsignedTransaction,
	priv *ecdsa.PrivateKey,
	opts ...OpOption,
) (txID ids.ID, err error) {
	ret := &Op{}
	ret.applyOpts(opts)

	g, err := cli.Genesis(ctx)
	if err != nil {
		return ids.Empty, err
	}

	utx.SetMagic(g.Magic)
	utx.SetNonce(randomNonce())

	dh, err := chain.DigestHash(utx)
	if err != nil {
		return ids.Empty, err
	}

	sig, err := chain.Sign(dh, priv)
	if err != nil {
		return ids.Empty, err
	}

	tx := chain.NewTx(utx, sig)
	if err := tx.Init(g); err != nil {
		return ids.Empty, err
	}

	color.Yellow("issuing tx %s (nonce=%d)", tx.ID(), tx.GetNonce())
	txID, err = cli.IssueRawTx(ctx, tx.Bytes())
	if err != nil {
		return ids.Empty, err
	}

	if ret.pollTx {
		color.Green("issued transaction %s (now polling)", txID)
		confirmed, err := cli.PollTx(ctx, txID)
		if err != nil {
			return ids.Empty, err
		}
		if !confirmed {
			color.Yellow("transaction %s not confirmed", txID)
		} else {
			color.Green("transaction %s confirmed", txID)
		}
	}

	if ret.pod != (common.Address{}) {
		info, err := cli.Pod(ctx, ret.pod)
		if err != nil {
			color.Red("cannot get pod info %v", err)
			return ids.Empty, err
		}
		color.Blue(
			"pod %s: owner=%s balance=%d active=%v",
			ret.pod.Hex(), info.Owner.Hex(), info.Balance, info.Active,
		)
	}

	return txID, nil
}

// Each transaction carries a fresh nonce so resubmissions of the same
// operation hash to distinct IDs.
func randomNonce() uint64 {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return binary.BigEndian.Uint64(b[:])
}

type Op struct {
	pollTx bool
	pod    common.Address
}

type OpOption func(*Op)

func (op *Op) applyOpts(opts []OpOption) {
	for _, opt := range opts {
		opt(op)
	}
}

// "true" to poll transaction for its confirmation.
func WithPollTx() OpOption {
	return func(op *Op) { op.pollTx = true }
}

// Non-zero to print out pod information after issuance.
func WithPod(addr common.Address) OpOption {
	return func(op *Op) { op.pod = addr }
}
