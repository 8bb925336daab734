// Package app assembles the board from configuration: snapshot backends,
// record store, saving indicator and board service. Both the API server and
// the CLI open the board through here.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"time"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/config"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/metrics"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/repo"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/service"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/store"
)

// Board is an opened board and the resources behind it.
type Board struct {
	Store     *store.Store
	Service   *service.BoardService
	Indicator *service.SaveIndicator

	closers []func()
}

// Close stops the indicator, drains pending mirror writes and releases the
// snapshot backends. Calls after the first do nothing.
func (b *Board) Close() {
	b.Indicator.Stop()
	for _, c := range slices.Backward(b.closers) {
		c()
	}
	b.closers = nil
}

// Open builds the board described by cfg. metrics may be nil.
func Open(ctx context.Context, cfg config.Config, log *slog.Logger, m *metrics.Collectors) (*Board, error) {
	if log == nil {
		log = slog.Default()
	}
	b := &Board{Indicator: service.NewSaveIndicator(cfg.SaveIndicatorDelay)}

	snapshots, err := b.openRepo(ctx, cfg, log)
	if err != nil {
		b.Close()
		return nil, err
	}

	storeOpts := []store.Option{
		store.WithLogger(log),
		store.WithWriteObserver(b.Indicator.Observe),
	}
	if cfg.SnapshotKey != "" {
		storeOpts = append(storeOpts, store.WithKey(cfg.SnapshotKey))
	}
	if cfg.SeedFile != "" {
		seed, err := store.LoadSeedFile(cfg.SeedFile, time.Now())
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("app.Open: %w", err)
		}
		storeOpts = append(storeOpts, store.WithSeed(seed))
	}

	var svcOpts []service.Option
	if m != nil {
		storeOpts = append(storeOpts, store.WithWriteObserver(m.ObserveWrite))
		svcOpts = append(svcOpts, service.WithOpRecorder(m))
	}

	b.Store = store.Open(ctx, snapshots, storeOpts...)
	b.Service = service.NewBoardService(b.Store, b.Indicator, svcOpts...)
	log.Info("board opened",
		"driver", cfg.StoreDriver,
		"mirrors", cfg.MirrorDrivers,
		"source", b.Store.Source(),
	)
	return b, nil
}

// openRepo opens the primary backend and, when mirrors are configured, wraps
// it in a repo.Mirror. Closers are registered so that the mirror drains
// before any backend is released.
func (b *Board) openRepo(ctx context.Context, cfg config.Config, log *slog.Logger) (repo.SnapshotRepo, error) {
	primary, closePrimary, err := repo.Open(ctx, repo.Driver(cfg.StoreDriver), openOptions(cfg, cfg.StoreDriver, log))
	if err != nil {
		return nil, fmt.Errorf("app.Open: %s store: %w", cfg.StoreDriver, err)
	}
	b.closers = append(b.closers, closePrimary)
	if len(cfg.MirrorDrivers) == 0 {
		return primary, nil
	}

	replicas := make([]repo.SnapshotRepo, 0, len(cfg.MirrorDrivers))
	for _, d := range cfg.MirrorDrivers {
		r, closeReplica, err := repo.Open(ctx, repo.Driver(d), openOptions(cfg, d, log))
		if err != nil {
			return nil, fmt.Errorf("app.Open: %s mirror: %w", d, err)
		}
		b.closers = append(b.closers, closeReplica)
		replicas = append(replicas, r)
	}
	mirror := repo.NewMirror(primary, replicas, log)
	b.closers = append(b.closers, mirror.Close)
	return mirror, nil
}

// openOptions maps cfg onto repo.OpenOptions for driver. STORE_PATH names a
// directory for the file driver and a database file for sqlite, so a mirror
// of the other kind derives its path from it.
func openOptions(cfg config.Config, driver string, log *slog.Logger) repo.OpenOptions {
	path := cfg.StorePath
	switch {
	case driver == cfg.StoreDriver:
	case repo.Driver(driver) == repo.DriverSQLite:
		path = filepath.Join(cfg.StorePath, "board.db")
	case repo.Driver(driver) == repo.DriverFile && repo.Driver(cfg.StoreDriver) == repo.DriverSQLite:
		path = filepath.Dir(cfg.StorePath)
	}
	return repo.OpenOptions{
		Path:        path,
		DatabaseURL: cfg.DatabaseURL,
		Logger:      log,
		S3: repo.S3Config{
			Bucket:    cfg.S3.Bucket,
			Region:    cfg.S3.Region,
			Endpoint:  cfg.S3.Endpoint,
			Prefix:    cfg.S3.Prefix,
			PathStyle: cfg.S3.PathStyle,
		},
	}
}
