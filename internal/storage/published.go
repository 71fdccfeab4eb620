// ABOUTME: Append-only published history container with the same record schema as drafts.
// ABOUTME: Receives a copy of every record that MarkPublished flips.
package storage

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/causa-colectivo/borrador/internal/models"
)

// appendPublished appends a copy of the record to the published history,
// writing the header first when the file is new.
func (s *CSVStore) appendPublished(post *models.Post) error {
	_, statErr := os.Stat(s.publishedPath)
	newFile := os.IsNotExist(statErr)

	f, err := os.OpenFile(s.publishedPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open published history: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if newFile {
		if err := w.Write(recordColumns); err != nil {
			return fmt.Errorf("failed to write published header: %w", err)
		}
	}
	if err := w.Write(encodeRecord(post)); err != nil {
		return fmt.Errorf("failed to append published record: %w", err)
	}
	w.Flush()
	return w.Error()
}

// ListPublished returns the published history in append order.
// A missing history file means nothing has been published yet.
func (s *CSVStore) ListPublished() ([]*models.Post, error) {
	posts, err := s.readContainer(s.publishedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return posts, nil
}
