package sqlstore

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/ghuser/giftregistry/pkg/database"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationFiles embed.FS

// Migrations returns the goose migrations for the given dialect.
func Migrations(d database.Dialect) (fs.FS, error) {
	switch d {
	case database.Postgres:
		return fs.Sub(migrationFiles, "migrations/postgres")
	case database.SQLite:
		return fs.Sub(migrationFiles, "migrations/sqlite")
	default:
		return nil, fmt.Errorf("no migrations for dialect %q", d)
	}
}
