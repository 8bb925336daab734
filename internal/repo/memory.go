package repo

import (
	"context"
	"sync"
)

// MemorySnapshotRepo keeps snapshots in process memory. It is used for the
// "memory" driver and as a test double: it counts writes and can be told to
// fail loads or saves.
type MemorySnapshotRepo struct {
	mu      sync.Mutex
	data    map[string][]byte
	writes  int
	loadErr error
	saveErr error
}

// NewMemorySnapshotRepo returns an empty MemorySnapshotRepo.
func NewMemorySnapshotRepo() *MemorySnapshotRepo {
	return &MemorySnapshotRepo{data: make(map[string][]byte)}
}

// Load returns a copy of the payload stored under key.
func (m *MemorySnapshotRepo) Load(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, false, m.loadErr
	}
	p, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), p...), true, nil
}

// Save stores a copy of payload under key.
func (m *MemorySnapshotRepo) Save(_ context.Context, key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data[key] = append([]byte(nil), payload...)
	m.writes++
	return nil
}

// Put seeds key without counting it as a write.
func (m *MemorySnapshotRepo) Put(key string, payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), payload...)
}

// Writes returns the number of successful Save calls.
func (m *MemorySnapshotRepo) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// FailLoads makes every subsequent Load return err. Pass nil to stop failing.
func (m *MemorySnapshotRepo) FailLoads(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr = err
}

// FailSaves makes every subsequent Save return err. Pass nil to stop failing.
func (m *MemorySnapshotRepo) FailSaves(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}
