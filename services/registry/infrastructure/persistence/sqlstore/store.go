// Package sqlstore implements the registry repositories on database/sql.
//
// Every query is written once with "?" placeholders and rebound for the
// active dialect, so the same repositories serve PostgreSQL and SQLite.
// Timestamps are stored as unix milliseconds.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/giftregistry/pkg/database"
	"github.com/ghuser/giftregistry/pkg/logger"
	"github.com/ghuser/giftregistry/pkg/migrator"
	"github.com/ghuser/giftregistry/services/registry/domain"
	"github.com/ghuser/giftregistry/services/registry/domain/repositories"
)

var (
	_ repositories.UserRepository       = (*UserRepository)(nil)
	_ repositories.InventoryRepository  = (*InventoryRepository)(nil)
	_ repositories.MemberRepository     = (*MemberRepository)(nil)
	_ repositories.CategoryRepository   = (*CategoryRepository)(nil)
	_ repositories.ItemRepository       = (*ItemRepository)(nil)
	_ repositories.ClaimRepository      = (*ClaimRepository)(nil)
	_ repositories.InvitationRepository = (*InvitationRepository)(nil)
)

// Store groups the repositories that share one database.
type Store struct {
	Users       *UserRepository
	Inventories *InventoryRepository
	Members     *MemberRepository
	Categories  *CategoryRepository
	Items       *ItemRepository
	Claims      *ClaimRepository
	Invitations *InvitationRepository
}

// New returns a Store backed by db.
func New(db *database.Database) *Store {
	return &Store{
		Users:       &UserRepository{db: db},
		Inventories: &InventoryRepository{db: db},
		Members:     &MemberRepository{db: db},
		Categories:  &CategoryRepository{db: db},
		Items:       &ItemRepository{db: db},
		Claims:      &ClaimRepository{db: db},
		Invitations: &InvitationRepository{db: db},
	}
}

// Migrate applies the registry schema to db.
func Migrate(ctx context.Context, db *database.Database, log logger.Logger) error {
	files, err := Migrations(db.Dialect())
	if err != nil {
		return err
	}
	return migrator.RunMigrations(ctx, db, files, log)
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func nullMillis(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: toMillis(*t), Valid: true}
}

func fromNullMillis(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := fromMillis(v.Int64)
	return &t
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func fromNullUUID(v uuid.NullUUID) *uuid.UUID {
	if !v.Valid {
		return nil
	}
	id := v.UUID
	return &id
}

// mapError translates driver errors into domain kinds. what names the
// entity for not-found and conflict messages.
func mapError(err error, op, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%s: %w", op, domain.NotFound("%s not found", what))
	case database.IsUniqueViolation(err):
		return fmt.Errorf("%s: %w", op, domain.Conflict("%s already exists", what))
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// expectOne returns a not-found error when res affected no rows.
func expectOne(res sql.Result, op, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, domain.NotFound("%s not found", what))
	}
	return nil
}

var now = func() time.Time { return time.Now().UTC() }
