package curation

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// RunLock guards an output workspace so two batch runs cannot write the same
// files concurrently. The lock file sits next to the guarded path.
type RunLock struct {
	path string
	lock *flock.Flock
}

// NewRunLock builds a lock guarding the directory that contains target.
func NewRunLock(target string) *RunLock {
	dir := filepath.Dir(target)
	name := "." + filepath.Base(target) + ".lock"
	path := filepath.Join(dir, name)
	return &RunLock{path: path, lock: flock.New(path)}
}

// Acquire takes the lock, failing immediately when another run holds it.
func (r *RunLock) Acquire() error {
	if dir := filepath.Dir(r.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create lock directory: %w", err)
		}
	}
	ok, err := r.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("another run is already writing %s", filepath.Dir(r.path))
	}
	return nil
}

// Release drops the lock and removes the lock file.
func (r *RunLock) Release() {
	_ = r.lock.Unlock()
	_ = os.Remove(r.path)
}

// Path reports the lock file location.
func (r *RunLock) Path() string {
	return r.path
}
