// Package repo contains all snapshot storage for the outlet board.
// The board persists one keyed entry holding the whole serialized record
// list; every backend here stores and retrieves that entry verbatim.
// No business logic lives here, only storage I/O.
package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SnapshotRepo stores whole-board snapshots under a fixed key.
// The record store depends on this interface, not on any concrete backend,
// which allows it to be unit-tested with the in-memory implementation.
type SnapshotRepo interface {
	// Load returns the payload stored under key. found is false (with a nil
	// error) when nothing has been saved under that key yet.
	Load(ctx context.Context, key string) (payload []byte, found bool, err error)

	// Save replaces the payload stored under key.
	Save(ctx context.Context, key string, payload []byte) error
}

// validateKey rejects keys that cannot be used as a file or object name.
func validateKey(key string) error {
	if key == "" || strings.HasPrefix(key, ".") || strings.ContainsAny(key, `/\`) {
		return fmt.Errorf("%w: invalid snapshot key %q", domain.ErrValidation, key)
	}
	return nil
}

// pgSnapshotRepo is the Postgres implementation of SnapshotRepo.
type pgSnapshotRepo struct {
	db db
}

// NewPostgresSnapshotRepo constructs a SnapshotRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
// The snapshots table is created by the goose migrations in package migrations.
func NewPostgresSnapshotRepo(db db) SnapshotRepo {
	return &pgSnapshotRepo{db: db}
}

// Load reads the snapshot row for key.
func (r *pgSnapshotRepo) Load(ctx context.Context, key string) ([]byte, bool, error) {
	const q = `SELECT payload FROM snapshots WHERE key = @key`

	var payload []byte
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("repo.SnapshotRepo.Load: %w", err)
	}
	return payload, true, nil
}

// Save upserts the snapshot row for key.
func (r *pgSnapshotRepo) Save(ctx context.Context, key string, payload []byte) error {
	const q = `
		INSERT INTO snapshots (key, payload)
		VALUES (@key, @payload)
		ON CONFLICT (key) DO UPDATE
		SET payload    = EXCLUDED.payload,
		    updated_at = now()`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"key": key, "payload": payload}); err != nil {
		return fmt.Errorf("repo.SnapshotRepo.Save: %w", err)
	}
	return nil
}
