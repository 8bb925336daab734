package repo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/repo"
)

// compile-time check: the memory repo is a SnapshotRepo.
var _ repo.SnapshotRepo = (*repo.MemorySnapshotRepo)(nil)

func TestMemorySnapshotRepo_CountsWrites(t *testing.T) {
	r := repo.NewMemorySnapshotRepo()
	ctx := context.Background()

	r.Put("k", []byte("seeded"))
	require.NoError(t, r.Save(ctx, "k", []byte("one")))
	require.NoError(t, r.Save(ctx, "k", []byte("two")))

	payload, found, err := r.Load(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "two", string(payload))
	assert.Equal(t, 2, r.Writes(), "Put must not count as a write")
}

func TestMemorySnapshotRepo_ReturnsCopies(t *testing.T) {
	r := repo.NewMemorySnapshotRepo()
	ctx := context.Background()

	in := []byte("abc")
	require.NoError(t, r.Save(ctx, "k", in))
	in[0] = 'z'

	out, _, err := r.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out))
}

func TestMemorySnapshotRepo_InjectedFailures(t *testing.T) {
	r := repo.NewMemorySnapshotRepo()
	ctx := context.Background()
	boom := errors.New("boom")

	r.FailSaves(boom)
	assert.ErrorIs(t, r.Save(ctx, "k", []byte("x")), boom)
	assert.Zero(t, r.Writes())

	r.FailLoads(boom)
	_, _, err := r.Load(ctx, "k")
	assert.ErrorIs(t, err, boom)
}
