package migrator

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/ghuser/giftregistry/pkg/database"
	"github.com/ghuser/giftregistry/pkg/logger"
)

// RunMigrations applies all pending goose migrations from files against db.
// A goose Provider is used instead of the package-level API so several
// databases (parallel tests, for one) can migrate at the same time.
func RunMigrations(ctx context.Context, db *database.Database, files fs.FS, log logger.Logger) error {
	dialect, err := gooseDialect(db.Dialect())
	if err != nil {
		return err
	}

	provider, err := goose.NewProvider(dialect, db.DB(), files)
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to up migrations: %w", err)
	}
	for _, r := range results {
		log.Debug("migration applied",
			"version", r.Source.Version,
			"path", r.Source.Path,
			"duration", r.Duration,
		)
	}
	return nil
}

func gooseDialect(d database.Dialect) (goose.Dialect, error) {
	switch d {
	case database.Postgres:
		return goose.DialectPostgres, nil
	case database.SQLite:
		return goose.DialectSQLite3, nil
	default:
		return "", fmt.Errorf("no goose dialect for %q", d)
	}
}
