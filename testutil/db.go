// Package testutil holds the Postgres helpers shared by the snapshot
// integration tests. Everything here skips (or no-ops) when
// TEST_DATABASE_URL is unset, so the unit suite never needs a database.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" for database/sql
	"github.com/pressly/goose/v3"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/migrations"
)

// DSNEnv names the variable holding the integration database URL.
const DSNEnv = "TEST_DATABASE_URL"

// NewTx returns a transaction that is rolled back when the test finishes,
// so snapshot rows written through it never outlive the test.
func NewTx(t *testing.T) pgx.Tx {
	t.Helper()
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, dsn(t))
	if err != nil {
		t.Fatalf("testutil.NewTx: open pool: %v", err)
	}
	t.Cleanup(pool.Close)

	tx, err := pool.Begin(ctx)
	if err != nil {
		t.Fatalf("testutil.NewTx: begin: %v", err)
	}
	t.Cleanup(func() { _ = tx.Rollback(context.Background()) })
	return tx
}

// NewSQLDB opens a database/sql handle for goose. It is closed when the
// test finishes.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := openSQL(dsn(t))
	if err != nil {
		t.Fatalf("testutil.NewSQLDB: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// Migrate applies every pending migration to the integration database.
// It does nothing when TEST_DATABASE_URL is unset. Meant for TestMain.
func Migrate(ctx context.Context) error {
	url := os.Getenv(DSNEnv)
	if url == "" {
		return nil
	}
	db, err := openSQL(url)
	if err != nil {
		return fmt.Errorf("testutil.Migrate: %w", err)
	}
	defer func() { _ = db.Close() }()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("testutil.Migrate: create goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("testutil.Migrate: up: %w", err)
	}
	return nil
}

func openSQL(url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return db, nil
}

func dsn(t *testing.T) string {
	t.Helper()
	url := os.Getenv(DSNEnv)
	if url == "" {
		t.Skip(DSNEnv + " not set; skipping Postgres test")
	}
	return url
}
