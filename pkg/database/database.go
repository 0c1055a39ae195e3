// Package database owns the SQL connection pool shared by every repository.
//
// Two drivers are supported behind one *sql.DB:
//   - postgres (jackc/pgx stdlib driver) for deployed environments
//   - sqlite (modernc.org/sqlite, pure Go) for single-node runs and tests
//
// Repositories write queries with "?" placeholders and pass them through
// Rebind so the same SQL runs on both dialects.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/ghuser/giftregistry/pkg/config"
	"github.com/ghuser/giftregistry/pkg/logger"
)

// Dialect identifies the SQL flavour behind a Database.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// Database wraps *sql.DB with transaction helpers and dialect awareness.
type Database struct {
	db      *sql.DB
	dialect Dialect
}

// Open connects to the database selected by cfg.DatabaseDriver.
func Open(ctx context.Context, cfg *config.Config, log logger.Logger) (*Database, error) {
	switch cfg.DatabaseDriver {
	case config.DriverSQLite:
		return OpenSQLite(ctx, cfg.SQLitePath, log)
	case config.DriverPostgres, "":
		return NewPool(ctx, cfg.DatabaseURL, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}
}

// NewPool opens a PostgreSQL connection pool through the pgx stdlib driver
// and verifies connectivity.
func NewPool(ctx context.Context, url string, log logger.Logger) (*Database, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	log.Debug("database opened", "driver", Postgres)
	return &Database{db: db, dialect: Postgres}, nil
}

// OpenSQLite opens (creating if needed) a SQLite database file.
//
// The pool is capped at one connection: SQLite has a single writer, and
// funnelling every statement through one connection turns BEGIN into the
// scope lock that the Postgres path gets from a row lock.
func OpenSQLite(ctx context.Context, path string, log logger.Logger) (*Database, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	dsn := "file:" + filepath.Clean(path) +
		"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	log.Debug("database opened", "driver", SQLite, "path", path)
	return &Database{db: db, dialect: SQLite}, nil
}

func ping(ctx context.Context, db *sql.DB) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}

// DB returns the underlying *sql.DB for non-transactional queries.
func (d *Database) DB() *sql.DB {
	return d.db
}

// Dialect reports which SQL flavour this Database speaks.
func (d *Database) Dialect() Dialect {
	return d.dialect
}

// Rebind rewrites "?" placeholders into the dialect's native form.
func (d *Database) Rebind(query string) string {
	if d.dialect != Postgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// WithTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise (including on panic).
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Ping checks the database connection health.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (d *Database) Close() error {
	if d == nil || d.db == nil {
		return nil
	}
	return d.db.Close()
}

// IsUniqueViolation reports whether err is a unique or primary key
// constraint failure on either supported driver.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
