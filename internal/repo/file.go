package repo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// lockRetry is how often a blocked lock acquisition is retried.
const lockRetry = 10 * time.Millisecond

// fileSnapshotRepo stores each key as <dir>/<key>.json. Reads take a shared
// lock and writes an exclusive lock on <dir>/<key>.json.lock so that a CLI
// and a server pointed at the same directory never observe a torn file.
type fileSnapshotRepo struct {
	dir string
}

// NewFileSnapshotRepo constructs a SnapshotRepo rooted at dir, creating the
// directory if needed.
func NewFileSnapshotRepo(dir string) (SnapshotRepo, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("repo.NewFileSnapshotRepo: create dir: %w", err)
	}
	return &fileSnapshotRepo{dir: dir}, nil
}

func (r *fileSnapshotRepo) path(key string) string {
	return filepath.Join(r.dir, key+".json")
}

// Load reads the snapshot file for key under a shared lock.
func (r *fileSnapshotRepo) Load(ctx context.Context, key string) ([]byte, bool, error) {
	if err := validateKey(key); err != nil {
		return nil, false, fmt.Errorf("repo.FileSnapshotRepo.Load: %w", err)
	}
	path := r.path(key)

	lock := flock.New(path + ".lock")
	locked, err := lock.TryRLockContext(ctx, lockRetry)
	if err != nil {
		return nil, false, fmt.Errorf("repo.FileSnapshotRepo.Load: lock: %w", err)
	}
	if !locked {
		return nil, false, fmt.Errorf("repo.FileSnapshotRepo.Load: lock %s not acquired", path)
	}
	defer func() { _ = lock.Unlock() }()

	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("repo.FileSnapshotRepo.Load: %w", err)
	}
	return payload, true, nil
}

// Save writes payload to a temp file and renames it over the snapshot file
// while holding the exclusive lock.
func (r *fileSnapshotRepo) Save(ctx context.Context, key string, payload []byte) error {
	if err := validateKey(key); err != nil {
		return fmt.Errorf("repo.FileSnapshotRepo.Save: %w", err)
	}
	path := r.path(key)

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLockContext(ctx, lockRetry)
	if err != nil {
		return fmt.Errorf("repo.FileSnapshotRepo.Save: lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("repo.FileSnapshotRepo.Save: lock %s not acquired", path)
	}
	defer func() { _ = lock.Unlock() }()

	tmp, err := os.CreateTemp(r.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("repo.FileSnapshotRepo.Save: temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("repo.FileSnapshotRepo.Save: write: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("repo.FileSnapshotRepo.Save: sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("repo.FileSnapshotRepo.Save: close: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("repo.FileSnapshotRepo.Save: rename: %w", err)
	}
	return nil
}
