package repo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/domain"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/migrations"
)

// Driver names a snapshot backend.
type Driver string

// Supported drivers.
const (
	DriverMemory   Driver = "memory"
	DriverFile     Driver = "file"
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
	DriverS3       Driver = "s3"
)

// OpenOptions carries the settings each driver needs. Only the fields for
// the selected driver are read.
type OpenOptions struct {
	// Path is the directory for DriverFile and the database file for DriverSQLite.
	Path string
	// DatabaseURL is the Postgres connection string for DriverPostgres.
	DatabaseURL string
	// S3 configures DriverS3.
	S3 S3Config
	// Logger receives migration progress for DriverPostgres.
	Logger *slog.Logger
}

// Open constructs the SnapshotRepo for driver. The returned close function
// releases any connections and is never nil.
func Open(ctx context.Context, driver Driver, o OpenOptions) (SnapshotRepo, func(), error) {
	noop := func() {}
	switch driver {
	case DriverMemory:
		return NewMemorySnapshotRepo(), noop, nil

	case DriverFile:
		r, err := NewFileSnapshotRepo(o.Path)
		if err != nil {
			return nil, noop, err
		}
		return r, noop, nil

	case DriverSQLite:
		r, err := NewSQLiteSnapshotRepo(ctx, o.Path)
		if err != nil {
			return nil, noop, err
		}
		return r, func() { _ = r.Close() }, nil

	case DriverPostgres:
		pool, err := openPostgres(ctx, o.DatabaseURL, o.Logger)
		if err != nil {
			return nil, noop, err
		}
		return NewPostgresSnapshotRepo(pool), pool.Close, nil

	case DriverS3:
		r, err := NewS3SnapshotRepo(ctx, o.S3)
		if err != nil {
			return nil, noop, err
		}
		return r, noop, nil
	}
	return nil, noop, fmt.Errorf("%w: unknown store driver %q", domain.ErrValidation, driver)
}

// openPostgres connects a pool, verifies the DB is reachable and applies
// any pending migrations before the first snapshot is read.
func openPostgres(ctx context.Context, dsn string, log *slog.Logger) (*pgxpool.Pool, error) {
	if log == nil {
		log = slog.Default()
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("repo.Open: create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("repo.Open: ping: %w", err)
	}

	// goose needs database/sql; OpenDBFromPool shares the pool's connections.
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer func() { _ = sqlDB.Close() }()

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, migrations.FS)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("repo.Open: create goose provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("repo.Open: run migrations: %w", err)
	}
	for _, r := range results {
		log.Info("migration applied", "version", r.Source.Version, "duration_ms", r.Duration.Milliseconds())
	}
	return pool, nil
}
