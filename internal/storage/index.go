// ABOUTME: Container index mapping calendar dates to draft container files.
// ABOUTME: Never assumes one-file-per-date; update paths always get a cross-file fallback.
package storage

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/causa-colectivo/borrador/internal/models"
)

// containerPrefix and containerExt form the canonical container name,
// posts_YYYY-MM-DD.csv. Files outside the convention are still indexed.
const (
	containerPrefix = "posts_"
	containerExt    = ".csv"
)

// ContainerIndex resolves which container files may hold records for a date.
type ContainerIndex struct {
	dir string // drafts directory
}

// NewContainerIndex creates an index over the given drafts directory.
func NewContainerIndex(dir string) *ContainerIndex {
	return &ContainerIndex{dir: dir}
}

// CanonicalPath returns the container path a date maps to under the naming
// convention. The file may not exist, and records for the date may live
// elsewhere.
func (ix *ContainerIndex) CanonicalPath(date time.Time) string {
	name := containerPrefix + date.Format(models.DateFormat) + containerExt
	return filepath.Join(ix.dir, name)
}

// ContainersFor returns every container that may hold records for the date:
// the canonical file first when it exists, followed by all other containers.
// Records migrate between files when dates get consolidated, so lookups that
// stop at the canonical file silently miss them.
func (ix *ContainerIndex) ContainersFor(date time.Time) ([]string, error) {
	canonical := ix.CanonicalPath(date)
	all, err := ix.AllContainers()
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(all)+1)
	if _, err := os.Stat(canonical); err == nil {
		paths = append(paths, canonical)
	}
	for _, p := range all {
		if p != canonical {
			paths = append(paths, p)
		}
	}
	return paths, nil
}

// AllContainers enumerates every draft container in the directory.
// Order is not guaranteed. A missing directory yields no containers.
func (ix *ContainerIndex) AllContainers() ([]string, error) {
	entries, err := os.ReadDir(ix.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), containerExt) {
			continue
		}
		paths = append(paths, filepath.Join(ix.dir, e.Name()))
	}
	return paths, nil
}
