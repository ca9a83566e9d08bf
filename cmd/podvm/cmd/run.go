// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/leveldb"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/logging"
	log "github.com/inconshreveable/log15"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bitdsm/podvm/chain"
	"github.com/bitdsm/podvm/ledger"
)

const shutdownTimeout = 10 * time.Second

func init() {
	runCmd.PersistentFlags().String(
		"http-addr",
		":9090",
		"listen address for the JSON-RPC endpoint",
	)
	runCmd.PersistentFlags().String(
		"db-dir",
		"",
		"database directory (empty to run in memory)",
	)
	runCmd.PersistentFlags().String(
		"genesis-file",
		"",
		"genesis file path (empty to use the default genesis)",
	)
	runCmd.PersistentFlags().Int(
		"activity-cache-size",
		128,
		"number of recent transitions to keep in memory",
	)
	for _, f := range []string{"http-addr", "db-dir", "genesis-file", "activity-cache-size"} {
		if err := viper.BindPFlag(f, runCmd.PersistentFlags().Lookup(f)); err != nil {
			panic(err)
		}
	}
}

var runCmd = &cobra.Command{
	Use:   "run [options]",
	Short: "Runs the registry server",
	RunE:  runFunc,
}

func runFunc(cmd *cobra.Command, args []string) error {
	g, err := loadGenesis(viper.GetString("genesis-file"))
	if err != nil {
		return err
	}

	db, err := openDatabase(viper.GetString("db-dir"))
	if err != nil {
		return err
	}

	config := &ledger.Config{}
	config.SetDefaults()
	if s := viper.GetInt("activity-cache-size"); s > 0 {
		config.ActivityCacheSize = s
	}

	l := ledger.New(g, db, config)
	defer func() {
		if err := l.Close(); err != nil {
			log.Error("cannot close ledger", "err", err)
		}
	}()

	handler, err := ledger.NewHandler(l)
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	mux.Handle(ledger.PublicEndpoint, handler)

	srv := &http.Server{
		Addr:    viper.GetString("http-addr"),
		Handler: mux,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("serving",
			"addr", srv.Addr,
			"endpoint", ledger.PublicEndpoint,
			"magic", g.Magic,
		)
		errc <- srv.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}
	return nil
}

func loadGenesis(path string) (*chain.Genesis, error) {
	if path == "" {
		return chain.DefaultGenesis(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	g := new(chain.Genesis)
	if err := json.Unmarshal(b, g); err != nil {
		return nil, err
	}
	if g.Magic == 0 {
		return nil, chain.ErrInvalidMagic
	}
	return g, nil
}

func openDatabase(dir string) (database.Database, error) {
	if dir == "" {
		log.Warn("no database directory provided, state will not survive restarts")
		return memdb.New(), nil
	}
	return leveldb.New(dir, nil, logging.NoLog{})
}
