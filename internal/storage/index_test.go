// ABOUTME: Tests for the container index.
// ABOUTME: Covers canonical naming, cross-file fallback ordering, and enumeration.
package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("fecha,titulo,status\n"), 0600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestCanonicalPath(t *testing.T) {
	ix := NewContainerIndex("/data/drafts")
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	got := ix.CanonicalPath(date)
	want := filepath.Join("/data/drafts", "posts_2025-03-01.csv")
	if got != want {
		t.Errorf("CanonicalPath: got %q, want %q", got, want)
	}
}

func TestContainersForCanonicalFirst(t *testing.T) {
	dir := t.TempDir()
	ix := NewContainerIndex(dir)
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	touch(t, ix.CanonicalPath(date))
	touch(t, filepath.Join(dir, "posts_2025-02-28.csv"))
	touch(t, filepath.Join(dir, "consolidated.csv"))

	paths, err := ix.ContainersFor(date)
	if err != nil {
		t.Fatalf("ContainersFor error: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 containers, got %d: %v", len(paths), paths)
	}
	if paths[0] != ix.CanonicalPath(date) {
		t.Errorf("expected canonical container first, got %q", paths[0])
	}
}

func TestContainersForMissingCanonical(t *testing.T) {
	dir := t.TempDir()
	ix := NewContainerIndex(dir)
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	// The date's records may live in a consolidated file that does not
	// follow the naming convention.
	touch(t, filepath.Join(dir, "posts_2025-02-01.csv"))
	touch(t, filepath.Join(dir, "week9.csv"))

	paths, err := ix.ContainersFor(date)
	if err != nil {
		t.Fatalf("ContainersFor error: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected fallback to all containers, got %v", paths)
	}
}

func TestAllContainersSkipsNonCSV(t *testing.T) {
	dir := t.TempDir()
	ix := NewContainerIndex(dir)

	touch(t, filepath.Join(dir, "posts_2025-01-01.csv"))
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.Mkdir(filepath.Join(dir, "archive.csv"), 0750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	paths, err := ix.AllContainers()
	if err != nil {
		t.Fatalf("AllContainers error: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("expected 1 container, got %v", paths)
	}
}

func TestAllContainersMissingDir(t *testing.T) {
	ix := NewContainerIndex(filepath.Join(t.TempDir(), "nope"))
	paths, err := ix.AllContainers()
	if err != nil {
		t.Fatalf("AllContainers error: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("expected no containers, got %v", paths)
	}
}
