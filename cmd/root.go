// Package cmd wires the command-line interface.
package cmd

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nikhilps/docledger/config"
	"github.com/nikhilps/docledger/db"
	"github.com/nikhilps/docledger/store"
	"github.com/nikhilps/docledger/store/local"
	"github.com/nikhilps/docledger/store/postgres"
)

var version = "1.0.0"

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:     "docledger",
	Short:   "Document ledger for freelance business paperwork",
	Long: `docledger keeps a freelancer's business documents in one place:
clients, invoices, quotations, receipts, contracts, time entries, and
resumes, with derived totals and sequential document numbering.

It runs against a local sqlite file by default, or against Postgres when
DATABASE_URL is set. The transfer command moves a local ledger into the
remote backend.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		level := slog.LevelInfo
		if cfg.LogLevel == "debug" {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openLocal opens the sqlite-backed store at the configured path.
func openLocal() (store.Store, error) {
	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening local database: %w", err)
	}
	return local.New(database)
}

// openRemote connects to Postgres, runs pending migrations, and scopes the
// store to the configured tenant.
func openRemote() (store.Store, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required for the remote backend")
	}
	database, err := db.OpenPostgres(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to Postgres: %w", err)
	}
	if err := db.Migrate(database); err != nil {
		database.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return postgres.New(database, cfg.Tenant), nil
}

// openStore picks the backend: Postgres when DATABASE_URL is set, sqlite
// otherwise.
func openStore() (store.Store, error) {
	if cfg.DatabaseURL != "" {
		return openRemote()
	}
	return openLocal()
}

func openPostgresDB() (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	return db.OpenPostgres(cfg.DatabaseURL)
}
