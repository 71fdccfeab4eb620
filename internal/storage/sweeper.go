// ABOUTME: Retention sweeper that purges drafts older than a configurable age.
// ABOUTME: Removes associated image assets best-effort; asset failures are warnings, never errors.
package storage

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/causa-colectivo/borrador/internal/models"
)

// Sweeper deletes posts (and their image assets) older than a cutoff.
type Sweeper struct {
	store *CSVStore
	log   zerolog.Logger
}

// NewSweeper creates a sweeper over the given store.
func NewSweeper(store *CSVStore, logger zerolog.Logger) *Sweeper {
	return &Sweeper{store: store, log: logger}
}

// SweepResult reports what a sweep removed.
type SweepResult struct {
	PostsRemoved  int
	AssetsRemoved int
}

// Sweep removes every post whose date is older than months before now,
// rewriting containers in place and deleting emptied ones. It is idempotent:
// a second run over the same state removes nothing. Malformed containers and
// missing image assets are logged and skipped, never fatal.
func (sw *Sweeper) Sweep(now time.Time, months int) (SweepResult, error) {
	// A month counts as 30 days, matching the age the operator configured
	// against calendar drift.
	cutoff := models.Day(now.AddDate(0, 0, -months*30))

	paths, err := sw.store.index.AllContainers()
	if err != nil {
		return SweepResult{}, err
	}

	var result SweepResult
	for _, path := range paths {
		posts, err := sw.store.readContainer(path)
		if err != nil {
			sw.log.Warn().Err(err).Str("container", path).Msg("skipping unreadable container")
			continue
		}

		keep := posts[:0:0]
		for _, p := range posts {
			if !p.Date.Before(cutoff) {
				keep = append(keep, p)
				continue
			}
			result.PostsRemoved++
			if p.ImagePath != "" {
				if err := os.Remove(p.ImagePath); err != nil {
					sw.log.Warn().Err(err).Str("asset", p.ImagePath).Msg("could not remove image asset")
				} else {
					result.AssetsRemoved++
				}
			}
		}

		if len(keep) == len(posts) {
			continue
		}
		if len(keep) == 0 {
			if err := os.Remove(path); err != nil {
				sw.log.Warn().Err(err).Str("container", path).Msg("could not remove emptied container")
			}
			continue
		}
		if err := sw.store.writeContainer(path, keep); err != nil {
			return result, err
		}
	}

	return result, nil
}
