// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"crypto/ecdsa"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/bitdsm/podvm/chain"
	"github.com/bitdsm/podvm/parser"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()

	config := &Config{}
	config.SetDefaults()
	l := New(chain.DefaultGenesis(), memdb.New(), config)
	l.clock.Set(time.Unix(100, 0))
	t.Cleanup(func() {
		_ = l.Close()
	})
	return l
}

func signedTx(t *testing.T, g *chain.Genesis, utx chain.UnsignedTransaction, priv *ecdsa.PrivateKey, nonce uint64) *chain.Transaction {
	t.Helper()

	utx.SetMagic(g.Magic)
	utx.SetNonce(nonce)
	dh, err := chain.DigestHash(utx)
	if err != nil {
		t.Fatal(err)
	}
	sig, err := chain.Sign(dh, priv)
	if err != nil {
		t.Fatal(err)
	}
	tx := chain.NewTx(utx, sig)
	if err := tx.Init(g); err != nil {
		t.Fatal(err)
	}
	return tx
}

func TestSubmitLifecycle(t *testing.T) {
	t.Parallel()

	l := newTestLedger(t)
	g := l.Genesis()

	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	owner := crypto.PubkeyToAddress(priv.PublicKey)
	key := "02" + strings.Repeat("a", 64)
	podAddr, err := parser.PodAddress(owner, key)
	if err != nil {
		t.Fatal(err)
	}

	txs := []*chain.Transaction{
		signedTx(t, g, &chain.InitializeRegistryTx{BaseTx: &chain.BaseTx{}, MinStakeWeight: 100}, priv, 0),
		signedTx(t, g, &chain.RegisterOperatorTx{BaseTx: &chain.BaseTx{}, Name: "op1", Metadata: "meta"}, priv, 1),
		signedTx(t, g, &chain.AddStakeTx{BaseTx: &chain.BaseTx{}, Amount: 200}, priv, 2),
		signedTx(t, g, &chain.CreatePodTx{BaseTx: &chain.BaseTx{}, BtcPublicKey: key, Operator: owner}, priv, 3),
		signedTx(t, g, &chain.ConfirmDepositTx{BaseTx: &chain.BaseTx{}, Pod: podAddr, Amount: 50}, priv, 4),
		signedTx(t, g, &chain.ConfirmDepositTx{BaseTx: &chain.BaseTx{}, Pod: podAddr, Amount: 25}, priv, 5),
	}
	for i, tx := range txs {
		if errs := l.Submit(tx); len(errs) > 0 {
			t.Fatalf("#%d: %v", i, errs[0])
		}
	}

	registry, _, err := chain.GetRegistryInfo(l.db)
	if err != nil {
		t.Fatal(err)
	}
	if registry.Authority != owner || registry.MinStakeWeight != 100 {
		t.Fatalf("unexpected registry %+v", registry)
	}
	if registry.OperatorCount != 1 || registry.TotalStake != 200 {
		t.Fatalf("unexpected counters %d/%d", registry.OperatorCount, registry.TotalStake)
	}

	pod, _, err := chain.GetPodInfo(l.db, podAddr)
	if err != nil {
		t.Fatal(err)
	}
	if pod.Balance != 75 {
		t.Fatalf("balance expected 75, got %d", pod.Balance)
	}
	if pod.Operator != owner {
		t.Fatalf("unexpected pod operator %s", pod.Operator)
	}

	activity := l.Activity()
	if len(activity) != len(txs) {
		t.Fatalf("activity expected %d entries, got %d", len(txs), len(activity))
	}
	if activity[0].Typ != chain.InitializeRegistry {
		t.Fatalf("unexpected first activity %+v", activity[0])
	}
	if activity[len(activity)-1].Amount != 25 {
		t.Fatalf("unexpected last activity %+v", activity[len(activity)-1])
	}
	if activity[3].Typ != chain.CreatePod || activity[3].Pod != podAddr.Hex() {
		t.Fatalf("unexpected pod creation activity %+v", activity[3])
	}

	// Accepted transactions are queryable and cannot replay.
	has, err := chain.HasTransaction(l.db, txs[0].ID())
	if err != nil {
		t.Fatal(err)
	}
	if !has {
		t.Fatal("transaction should be confirmed")
	}
	errs := l.Submit(txs[0])
	if len(errs) != 1 || !errors.Is(errs[0], chain.ErrDuplicateTx) {
		t.Fatalf("expected ErrDuplicateTx, got %v", errs)
	}
}

func TestSubmitRejectedTxLeavesNoTrace(t *testing.T) {
	t.Parallel()

	l := newTestLedger(t)
	g := l.Genesis()

	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}

	// The registry was never initialized, so registration must fail and
	// must not be recorded.
	tx := signedTx(t, g, &chain.RegisterOperatorTx{BaseTx: &chain.BaseTx{}, Name: "op1"}, priv, 0)
	errs := l.Submit(tx)
	if len(errs) != 1 || !errors.Is(errs[0], chain.ErrRegistryMissing) {
		t.Fatalf("expected ErrRegistryMissing, got %v", errs)
	}

	has, err := chain.HasTransaction(l.db, tx.ID())
	if err != nil {
		t.Fatal(err)
	}
	if has {
		t.Fatal("rejected transaction must not be stored")
	}
	if len(l.Activity()) != 0 {
		t.Fatal("rejected transaction must not appear in activity")
	}
	_, has, err = chain.GetOperatorInfo(l.db, crypto.PubkeyToAddress(priv.PublicKey))
	if err != nil {
		t.Fatal(err)
	}
	if has {
		t.Fatal("rejected transaction must not write records")
	}
}

func TestActivityCacheBound(t *testing.T) {
	t.Parallel()

	config := &Config{ActivityCacheSize: 2}
	l := New(chain.DefaultGenesis(), memdb.New(), config)
	l.clock.Set(time.Unix(100, 0))
	defer l.Close()
	g := l.Genesis()

	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	owner := crypto.PubkeyToAddress(priv.PublicKey)
	key := "02" + strings.Repeat("b", 64)
	podAddr, err := parser.PodAddress(owner, key)
	if err != nil {
		t.Fatal(err)
	}

	txs := []*chain.Transaction{
		signedTx(t, g, &chain.CreatePodTx{BaseTx: &chain.BaseTx{}, BtcPublicKey: key}, priv, 0),
		signedTx(t, g, &chain.ConfirmDepositTx{BaseTx: &chain.BaseTx{}, Pod: podAddr, Amount: 1}, priv, 1),
		signedTx(t, g, &chain.ConfirmDepositTx{BaseTx: &chain.BaseTx{}, Pod: podAddr, Amount: 2}, priv, 2),
	}
	if errs := l.Submit(txs...); len(errs) > 0 {
		t.Fatalf("unexpected errors %v", errs)
	}

	activity := l.Activity()
	if len(activity) != 2 {
		t.Fatalf("activity expected 2 entries, got %d", len(activity))
	}
	if activity[0].Amount != 1 || activity[1].Amount != 2 {
		t.Fatalf("unexpected activity window %+v", activity)
	}
}
