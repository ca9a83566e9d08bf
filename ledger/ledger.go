// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ledger hosts the registry state machine: it applies signed
// transactions to the backing store and serves the query surface.
package ledger

import (
	"sync"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/versiondb"
	"github.com/ava-labs/avalanchego/utils/timer/mockable"
	log "github.com/inconshreveable/log15"

	"github.com/bitdsm/podvm/chain"
)

type Ledger struct {
	mu sync.Mutex

	genesis *chain.Genesis
	db      database.Database
	config  *Config
	clock   mockable.Clock

	activity []*chain.Activity
}

func New(g *chain.Genesis, db database.Database, config *Config) *Ledger {
	return &Ledger{
		genesis:  g,
		db:       db,
		config:   config,
		activity: []*chain.Activity{},
	}
}

func (l *Ledger) Genesis() *chain.Genesis { return l.genesis }

func (l *Ledger) Close() error { return l.db.Close() }

// Submit applies each transaction atomically, in order. A transaction's
// writes are staged on an overlay and reach the backing store only if the
// whole transition succeeds, so a failed transaction leaves no trace.
func (l *Ledger) Submit(txs ...*chain.Transaction) (errs []error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Time().Unix()
	for _, tx := range txs {
		if err := l.submit(tx, now); err != nil {
			log.Debug("transaction rejected", "txId", tx.ID(), "err", err)
			errs = append(errs, err)
		}
	}
	return errs
}

func (l *Ledger) submit(tx *chain.Transaction, now int64) error {
	if err := tx.Init(l.genesis); err != nil {
		return err
	}
	vdb := versiondb.New(l.db)
	defer vdb.Abort()
	if err := tx.Execute(l.genesis, vdb, uint64(now)); err != nil {
		return err
	}
	if err := vdb.Commit(); err != nil {
		return err
	}
	l.record(tx, now)
	log.Info("transaction accepted",
		"txId", tx.ID(),
		"sender", tx.Sender().Hex(),
	)
	return nil
}

func (l *Ledger) record(tx *chain.Transaction, now int64) {
	a := tx.Activity()
	a.Tmstmp = now
	a.Sender = tx.Sender().Hex()
	l.activity = append(l.activity, a)
	if len(l.activity) > l.config.ActivityCacheSize {
		l.activity = l.activity[len(l.activity)-l.config.ActivityCacheSize:]
	}
}

// Activity returns the most recent accepted transitions, oldest first.
func (l *Ledger) Activity() []*chain.Activity {
	l.mu.Lock()
	defer l.mu.Unlock()

	cp := make([]*chain.Activity, len(l.activity))
	copy(cp, l.activity)
	return cp
}
