// Command registry applies the registry schema to the configured database.
// API instances migrate SQLite files themselves; run this before deploying
// against Postgres.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ghuser/giftregistry/pkg/config"
	"github.com/ghuser/giftregistry/pkg/database"
	"github.com/ghuser/giftregistry/pkg/logger"
	"github.com/ghuser/giftregistry/services/registry/infrastructure/persistence/sqlstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg)
	ctx := context.Background()

	db, err := database.Open(ctx, cfg, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close() //nolint:errcheck

	if err := sqlstore.Migrate(ctx, db, log); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	log.Info("registry schema up to date", "driver", db.Dialect())
}
