package repo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gammazero/workerpool"
)

// Mirror writes every snapshot to a primary repo synchronously and then
// replicates it to each replica in the background. Loads only ever read the
// primary. Each replica gets its own single-worker pool so its writes land
// in the order they were saved.
type Mirror struct {
	primary  SnapshotRepo
	replicas []SnapshotRepo
	pools    []*workerpool.WorkerPool
	log      *slog.Logger
}

// NewMirror constructs a Mirror. Close must be called to drain pending replications.
func NewMirror(primary SnapshotRepo, replicas []SnapshotRepo, log *slog.Logger) *Mirror {
	if log == nil {
		log = slog.Default()
	}
	pools := make([]*workerpool.WorkerPool, len(replicas))
	for i := range replicas {
		pools[i] = workerpool.New(1)
	}
	return &Mirror{primary: primary, replicas: replicas, pools: pools, log: log}
}

// Load reads from the primary.
func (m *Mirror) Load(ctx context.Context, key string) ([]byte, bool, error) {
	return m.primary.Load(ctx, key)
}

// Save writes to the primary and queues the same payload for every replica.
// Replica failures are logged, never returned.
func (m *Mirror) Save(ctx context.Context, key string, payload []byte) error {
	if err := m.primary.Save(ctx, key, payload); err != nil {
		return fmt.Errorf("repo.Mirror.Save: %w", err)
	}
	data := append([]byte(nil), payload...)
	for i, replica := range m.replicas {
		m.pools[i].Submit(func() {
			if err := replica.Save(context.WithoutCancel(ctx), key, data); err != nil {
				m.log.Warn("snapshot replication failed", "replica", i, "key", key, "error", err)
			}
		})
	}
	return nil
}

// Close waits for queued replications to finish.
func (m *Mirror) Close() {
	for _, p := range m.pools {
		p.StopWait()
	}
}
