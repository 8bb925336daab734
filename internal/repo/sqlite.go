package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// SQLiteSnapshotRepo persists snapshots to a single SQLite table, one row
// per key.
type SQLiteSnapshotRepo struct {
	db *sql.DB
}

// NewSQLiteSnapshotRepo opens (or creates) the database at path and ensures
// the snapshots table exists. Callers must Close it.
func NewSQLiteSnapshotRepo(ctx context.Context, path string) (*SQLiteSnapshotRepo, error) {
	if path == "" {
		path = "outlets.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("repo.NewSQLiteSnapshotRepo: create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("repo.NewSQLiteSnapshotRepo: open: %w", err)
	}
	// A single connection serializes writers; SQLite allows one at a time anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS snapshots (
		key        TEXT PRIMARY KEY,
		payload    BLOB NOT NULL,
		updated_at TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("repo.NewSQLiteSnapshotRepo: create table: %w", err)
	}
	return &SQLiteSnapshotRepo{db: db}, nil
}

// Load returns the payload for key.
func (r *SQLiteSnapshotRepo) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM snapshots WHERE key = ?`, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("repo.SQLiteSnapshotRepo.Load: %w", err)
	}
	return payload, true, nil
}

// Save upserts the payload for key.
func (r *SQLiteSnapshotRepo) Save(ctx context.Context, key string, payload []byte) error {
	const q = `
		INSERT INTO snapshots (key, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`

	now := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := r.db.ExecContext(ctx, q, key, payload, now); err != nil {
		return fmt.Errorf("repo.SQLiteSnapshotRepo.Save: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (r *SQLiteSnapshotRepo) Close() error {
	return r.db.Close()
}
