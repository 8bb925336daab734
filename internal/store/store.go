// Package store holds the authoritative, ordered list of outlets for the
// running process and mirrors it to a SnapshotRepo after every change.
//
// The whole list is serialized on every write; there are no partial updates.
// A mutation is committed in memory only once its snapshot has been saved.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/domain"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/repo"
)

// SnapshotKey is the key the board is saved under. It changes whenever the
// record schema changes so that snapshots from older versions are never
// read with the new shape. The previous schema used "cloudchef_flow_data".
const SnapshotKey = "cloudchef_flow_data_v4"

// Source describes where the records came from when the store was opened.
type Source string

// Load sources.
const (
	SourceSnapshot Source = "snapshot"
	SourceSeed     Source = "seed"
)

// WriteEvent is delivered to write observers after every snapshot write attempt.
type WriteEvent struct {
	// Revision is the store revision after the write (unchanged on failure).
	Revision uint64
	Bytes    int
	Err      error
	At       time.Time
}

// MutateFunc receives a private copy of the records and returns the new list
// and whether anything changed. Returning changed=false skips the write.
type MutateFunc func(records []domain.Outlet) (next []domain.Outlet, changed bool, err error)

// Store is the in-memory record list plus its persistence side effects.
// It is safe for concurrent use; mutations are serialized.
type Store struct {
	mu        sync.Mutex
	repo      repo.SnapshotRepo
	key       string
	stages    domain.StageCatalog
	cities    domain.CityCatalog
	seed      []domain.Outlet
	records   []domain.Outlet
	revision  uint64
	source    Source
	observers []func(WriteEvent)
	log       *slog.Logger
	now       func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides SnapshotKey.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithLogger sets the logger used for load fallbacks and migration warnings.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithSeed replaces the built-in seed board.
func WithSeed(seed []domain.Outlet) Option {
	return func(s *Store) { s.seed = append([]domain.Outlet{}, seed...) }
}

// WithCatalogs replaces the stage and city catalogs used to validate loaded records.
func WithCatalogs(stages domain.StageCatalog, cities domain.CityCatalog) Option {
	return func(s *Store) {
		s.stages = stages
		s.cities = cities
	}
}

// WithWriteObserver registers fn to be called after every snapshot write attempt.
// Observers run outside the store lock.
func WithWriteObserver(fn func(WriteEvent)) Option {
	return func(s *Store) { s.observers = append(s.observers, fn) }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open loads the board from r. A missing, unreadable or malformed snapshot
// is not an error: the store falls back to the seed board and logs why.
// Loaded records whose stage is not in the catalog are dropped; records
// whose city is not in the catalog keep the record with the city cleared.
// When the loaded list differs from what is stored (seeded or migrated) it
// is written back once; a failure there is logged and not returned.
func Open(ctx context.Context, r repo.SnapshotRepo, opts ...Option) *Store {
	s := &Store{
		repo:   r,
		key:    SnapshotKey,
		stages: domain.Stages,
		cities: domain.Cities,
		log:    slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.seed == nil {
		s.seed = DefaultSeed(s.now())
	}

	records, source, dirty := s.load(ctx)
	s.records = records
	s.source = source

	if dirty {
		if ev := s.persist(ctx, records); ev.Err != nil {
			s.log.Warn("failed to write initial snapshot", "key", s.key, "error", ev.Err)
		} else {
			s.notify(ev)
		}
	}
	return s
}

func (s *Store) load(ctx context.Context) ([]domain.Outlet, Source, bool) {
	payload, found, err := s.repo.Load(ctx, s.key)
	if err != nil {
		s.log.Error("failed to load saved data", "key", s.key, "error", err)
		return slices.Clone(s.seed), SourceSeed, true
	}
	if !found {
		s.log.Info("no saved data; starting from seed", "key", s.key)
		return slices.Clone(s.seed), SourceSeed, true
	}

	var raw []domain.Outlet
	if err := json.Unmarshal(payload, &raw); err != nil {
		s.log.Error("failed to load saved data", "key", s.key, "error", err)
		return slices.Clone(s.seed), SourceSeed, true
	}

	records, dropped, cleared := s.migrate(raw)
	if dropped > 0 || cleared > 0 {
		s.log.Warn("saved data did not match the current catalogs",
			"key", s.key, "dropped_unknown_stage", dropped, "cleared_unknown_city", cleared)
	}
	return records, SourceSnapshot, dropped > 0 || cleared > 0
}

// migrate filters records against the current catalogs.
func (s *Store) migrate(raw []domain.Outlet) (records []domain.Outlet, dropped, cleared int) {
	records = make([]domain.Outlet, 0, len(raw))
	for _, o := range raw {
		if !s.stages.Contains(o.Stage) {
			dropped++
			continue
		}
		if o.City != "" && !s.cities.Contains(o.City) {
			o.City = ""
			cleared++
		}
		records = append(records, o)
	}
	return records, dropped, cleared
}

// Records returns a copy of the current list and the revision it belongs to.
func (s *Store) Records() ([]domain.Outlet, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.records), s.revision
}

// Revision increases by one with every committed mutation.
func (s *Store) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

// Source reports whether the store started from a saved snapshot or the seed.
func (s *Store) Source() Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source
}

// Stages returns the stage catalog the store validates against.
func (s *Store) Stages() domain.StageCatalog { return s.stages }

// Cities returns the city catalog the store validates against.
func (s *Store) Cities() domain.CityCatalog { return s.cities }

// Mutate applies fn to a copy of the records, saves the resulting snapshot and
// commits it. If fn returns an error or reports no change, nothing is written.
// If the write fails the in-memory list is left untouched.
func (s *Store) Mutate(ctx context.Context, fn MutateFunc) error {
	s.mu.Lock()
	next, changed, err := fn(slices.Clone(s.records))
	if err != nil || !changed {
		s.mu.Unlock()
		return err
	}

	ev := s.persist(ctx, next)
	if ev.Err == nil {
		s.records = next
		s.revision++
		ev.Revision = s.revision
	} else {
		ev.Revision = s.revision
	}
	s.mu.Unlock()

	s.notify(ev)
	if ev.Err != nil {
		return fmt.Errorf("store.Store.Mutate: %w", ev.Err)
	}
	return nil
}

// Reset replaces the board with the seed records.
func (s *Store) Reset(ctx context.Context) error {
	return s.Mutate(ctx, func(_ []domain.Outlet) ([]domain.Outlet, bool, error) {
		return slices.Clone(s.seed), true, nil
	})
}

// persist serializes records and saves them. The caller holds s.mu, or is Open.
func (s *Store) persist(ctx context.Context, records []domain.Outlet) WriteEvent {
	if records == nil {
		records = []domain.Outlet{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return WriteEvent{Err: fmt.Errorf("encode snapshot: %w", err), At: s.now()}
	}
	err = s.repo.Save(ctx, s.key, payload)
	return WriteEvent{Revision: s.revision, Bytes: len(payload), Err: err, At: s.now()}
}

func (s *Store) notify(ev WriteEvent) {
	for _, fn := range s.observers {
		fn(ev)
	}
}
