package store_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/domain"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/repo"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/store"
)

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openStore(t *testing.T, r repo.SnapshotRepo, opts ...store.Option) *store.Store {
	t.Helper()
	opts = append([]store.Option{
		store.WithLogger(quietLogger()),
		store.WithClock(func() time.Time { return fixedNow }),
	}, opts...)
	return store.Open(context.Background(), r, opts...)
}

func putSnapshot(t *testing.T, r *repo.MemorySnapshotRepo, records []domain.Outlet) {
	t.Helper()
	payload, err := json.Marshal(records)
	require.NoError(t, err)
	r.Put(store.SnapshotKey, payload)
}

func loadSnapshot(t *testing.T, r *repo.MemorySnapshotRepo) []domain.Outlet {
	t.Helper()
	payload, found, err := r.Load(context.Background(), store.SnapshotKey)
	require.NoError(t, err)
	require.True(t, found)
	var out []domain.Outlet
	require.NoError(t, json.Unmarshal(payload, &out))
	return out
}

func appendOutlet(o domain.Outlet) store.MutateFunc {
	return func(records []domain.Outlet) ([]domain.Outlet, bool, error) {
		return append([]domain.Outlet{o}, records...), true, nil
	}
}

func TestOpen_EmptyRepoSeedsAndPersists(t *testing.T) {
	r := repo.NewMemorySnapshotRepo()
	s := openStore(t, r)

	records, rev := s.Records()
	assert.Equal(t, uint64(0), rev)
	assert.Equal(t, store.SourceSeed, s.Source())
	require.Len(t, records, 5)
	assert.Equal(t, "Burger King - Downtown", records[0].Name)
	assert.Equal(t, domain.StageOnboardingRequest, records[0].Stage)
	assert.Equal(t, fixedNow.UnixMilli(), records[0].Timestamp)
	assert.Equal(t, fixedNow.Add(-400*time.Second).UnixMilli(), records[4].Timestamp)

	assert.Equal(t, 1, r.Writes())
	assert.Equal(t, records, loadSnapshot(t, r))
}

func TestOpen_LoadsExistingSnapshotWithoutWriting(t *testing.T) {
	r := repo.NewMemorySnapshotRepo()
	saved := []domain.Outlet{
		{ID: "A", Name: "Alpha", Stage: domain.StageChefApproval, City: "Pune", Timestamp: 10},
		{ID: "B", Name: "Beta", Stage: domain.StageOutletLive, Timestamp: 20},
	}
	putSnapshot(t, r, saved)

	s := openStore(t, r)
	records, _ := s.Records()
	assert.Equal(t, saved, records)
	assert.Equal(t, store.SourceSnapshot, s.Source())
	assert.Equal(t, 0, r.Writes())
}

func TestOpen_EmptyArraySnapshotIsAnEmptyBoard(t *testing.T) {
	r := repo.NewMemorySnapshotRepo()
	r.Put(store.SnapshotKey, []byte(`[]`))

	s := openStore(t, r)
	records, _ := s.Records()
	assert.Empty(t, records)
	assert.Equal(t, store.SourceSnapshot, s.Source())
}

func TestOpen_DropsUnknownStagesAndClearsUnknownCities(t *testing.T) {
	r := repo.NewMemorySnapshotRepo()
	r.Put(store.SnapshotKey, []byte(`[
		{"id":"A","name":"keep","description":"","stage":"MOU SIGN","city":"Atlantis","timestamp":1},
		{"id":"B","name":"drop","description":"","stage":"ARCHIVED","timestamp":2},
		{"id":"C","name":"keep too","description":"","stage":"OUTLET LIVE","city":"Delhi","timestamp":3}
	]`))

	s := openStore(t, r)
	records, _ := s.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "A", records[0].ID)
	assert.Equal(t, domain.City(""), records[0].City)
	assert.Equal(t, "C", records[1].ID)
	assert.Equal(t, domain.City("Delhi"), records[1].City)

	assert.Equal(t, 1, r.Writes(), "migrated board is written back once")
	assert.Equal(t, records, loadSnapshot(t, r))
}

func TestOpen_FallsBackToSeed(t *testing.T) {
	tests := []struct {
		name  string
		setup func(r *repo.MemorySnapshotRepo)
	}{
		{name: "malformed json", setup: func(r *repo.MemorySnapshotRepo) {
			r.Put(store.SnapshotKey, []byte(`{not json`))
		}},
		{name: "wrong shape", setup: func(r *repo.MemorySnapshotRepo) {
			r.Put(store.SnapshotKey, []byte(`{"id":"A"}`))
		}},
		{name: "load error", setup: func(r *repo.MemorySnapshotRepo) {
			r.FailLoads(errors.New("disk on fire"))
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := repo.NewMemorySnapshotRepo()
			tc.setup(r)

			s := openStore(t, r)
			records, _ := s.Records()
			assert.Len(t, records, 5)
			assert.Equal(t, store.SourceSeed, s.Source())
		})
	}
}

func TestOpen_SeedWriteFailureIsNotFatal(t *testing.T) {
	r := repo.NewMemorySnapshotRepo()
	r.FailSaves(errors.New("read-only"))

	s := openStore(t, r)
	records, _ := s.Records()
	assert.Len(t, records, 5)
	assert.Equal(t, 0, r.Writes())
}

func TestOpen_CustomSeedAndKey(t *testing.T) {
	r := repo.NewMemorySnapshotRepo()
	seed := []domain.Outlet{{ID: "S", Name: "Only", Stage: domain.StageIntegration}}

	s := openStore(t, r, store.WithSeed(seed), store.WithKey("board_test"))
	records, _ := s.Records()
	assert.Equal(t, seed, records)

	_, found, err := r.Load(context.Background(), "board_test")
	require.NoError(t, err)
	assert.True(t, found)
	_, found, err = r.Load(context.Background(), store.SnapshotKey)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMutate_PersistsFullSnapshotAndBumpsRevision(t *testing.T) {
	r := repo.NewMemorySnapshotRepo()
	s := openStore(t, r, store.WithSeed([]domain.Outlet{}))
	writesAfterOpen := r.Writes()

	o := domain.Outlet{ID: "N1", Name: "New Outlet N1", Stage: domain.StageOnboardingRequest, City: "Bengaluru", Timestamp: 5}
	require.NoError(t, s.Mutate(context.Background(), appendOutlet(o)))

	records, rev := s.Records()
	assert.Equal(t, uint64(1), rev)
	assert.Equal(t, []domain.Outlet{o}, records)
	assert.Equal(t, writesAfterOpen+1, r.Writes())

	// Reloading the persisted state reproduces the same record set.
	reopened := openStore(t, r)
	reloaded, _ := reopened.Records()
	assert.Equal(t, records, reloaded)
}

func TestMutate_UnchangedSkipsWrite(t *testing.T) {
	r := repo.NewMemorySnapshotRepo()
	s := openStore(t, r)
	before := r.Writes()

	err := s.Mutate(context.Background(), func(records []domain.Outlet) ([]domain.Outlet, bool, error) {
		return records, false, nil
	})
	require.NoError(t, err)
	assert.Equal(t, before, r.Writes())
	assert.Equal(t, uint64(0), s.Revision())
}

func TestMutate_FuncErrorLeavesStateAlone(t *testing.T) {
	r := repo.NewMemorySnapshotRepo()
	s := openStore(t, r)
	before, _ := s.Records()

	err := s.Mutate(context.Background(), func(records []domain.Outlet) ([]domain.Outlet, bool, error) {
		records[0].Name = "scribbled"
		return nil, false, domain.ErrNotFound
	})
	require.ErrorIs(t, err, domain.ErrNotFound)

	after, rev := s.Records()
	assert.Equal(t, before, after, "fn works on a copy")
	assert.Equal(t, uint64(0), rev)
}

func TestMutate_SaveFailureRollsBack(t *testing.T) {
	r := repo.NewMemorySnapshotRepo()
	s := openStore(t, r)
	before, _ := s.Records()
	saveErr := errors.New("quota exceeded")
	r.FailSaves(saveErr)

	err := s.Mutate(context.Background(), appendOutlet(domain.Outlet{ID: "X", Stage: domain.StageMOUSign}))
	require.ErrorIs(t, err, saveErr)

	after, rev := s.Records()
	assert.Equal(t, before, after)
	assert.Equal(t, uint64(0), rev)

	r.FailSaves(nil)
	require.NoError(t, s.Mutate(context.Background(), appendOutlet(domain.Outlet{ID: "X", Stage: domain.StageMOUSign})))
	assert.Equal(t, uint64(1), s.Revision())
}

func TestMutate_NotifiesObservers(t *testing.T) {
	r := repo.NewMemorySnapshotRepo()
	var (
		mu     sync.Mutex
		events []store.WriteEvent
	)
	observe := func(ev store.WriteEvent) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, ev)
	}
	r.Put(store.SnapshotKey, []byte(`[]`))
	s := openStore(t, r, store.WithWriteObserver(observe))
	require.Empty(t, events, "a clean load does not write")

	require.NoError(t, s.Mutate(context.Background(), appendOutlet(domain.Outlet{ID: "A", Stage: domain.StageOverlapCheck})))
	r.FailSaves(errors.New("nope"))
	require.Error(t, s.Mutate(context.Background(), appendOutlet(domain.Outlet{ID: "B", Stage: domain.StageOverlapCheck})))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, events, 2)
	assert.NoError(t, events[0].Err)
	assert.Equal(t, uint64(1), events[0].Revision)
	assert.Positive(t, events[0].Bytes)
	assert.Equal(t, fixedNow, events[0].At)
	assert.Error(t, events[1].Err)
	assert.Equal(t, uint64(1), events[1].Revision)
}

func TestMutate_Concurrent(t *testing.T) {
	r := repo.NewMemorySnapshotRepo()
	s := openStore(t, r, store.WithSeed([]domain.Outlet{}))

	const n = 20
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o := domain.Outlet{ID: string(rune('a' + i)), Stage: domain.StageOnboardingRequest}
			assert.NoError(t, s.Mutate(context.Background(), appendOutlet(o)))
		}()
	}
	wg.Wait()

	records, rev := s.Records()
	assert.Len(t, records, n)
	assert.Equal(t, uint64(n), rev)
	assert.Len(t, loadSnapshot(t, r), n)
}

func TestReset_RestoresSeed(t *testing.T) {
	r := repo.NewMemorySnapshotRepo()
	s := openStore(t, r)
	seed, _ := s.Records()

	require.NoError(t, s.Mutate(context.Background(), func(_ []domain.Outlet) ([]domain.Outlet, bool, error) {
		return []domain.Outlet{}, true, nil
	}))
	emptied, _ := s.Records()
	require.Empty(t, emptied)

	require.NoError(t, s.Reset(context.Background()))
	records, rev := s.Records()
	assert.Equal(t, seed, records)
	assert.Equal(t, uint64(2), rev)
}

func TestOpen_WithFileRepoRoundTrip(t *testing.T) {
	r, err := repo.NewFileSnapshotRepo(t.TempDir())
	require.NoError(t, err)

	s := openStore(t, r, store.WithSeed([]domain.Outlet{}))
	o := domain.Outlet{ID: "F1", Name: "File", Description: `say "hi"`, Stage: domain.StageFassiApply, City: "Kolkata", Timestamp: 42}
	require.NoError(t, s.Mutate(context.Background(), appendOutlet(o)))

	reopened := openStore(t, r)
	records, _ := reopened.Records()
	assert.Equal(t, []domain.Outlet{o}, records)
}
