package curation_test

import (
	"path/filepath"
	"testing"

	"audiotools/internal/curation"
)

func TestRunLockExcludesSecondHolder(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "scores.csv")

	first := curation.NewRunLock(target)
	if err := first.Acquire(); err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	defer first.Release()

	second := curation.NewRunLock(target)
	if err := second.Acquire(); err == nil {
		second.Release()
		t.Fatal("expected second acquire to fail while first holds the lock")
	}
}

func TestRunLockReleaseAllowsReacquire(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "scores.csv")

	lock := curation.NewRunLock(target)
	if err := lock.Acquire(); err != nil {
		t.Fatalf("acquire: %v", err)
	}
	lock.Release()

	again := curation.NewRunLock(target)
	if err := again.Acquire(); err != nil {
		t.Fatalf("reacquire after release: %v", err)
	}
	again.Release()
}
