// ABOUTME: CSV record codec for draft posts with header-based column lookup.
// ABOUTME: Columns are identified by stable names, never by position, so older files decode cleanly.
package storage

import (
	"fmt"
	"time"

	"github.com/causa-colectivo/borrador/internal/models"
)

// Stable column identifiers. These are the on-disk contract and never change.
const (
	colDate       = "fecha"
	colTitle      = "titulo"
	colImageBrief = "imagen"
	colBody       = "descripcion"
	colStatus     = "status"
	colCreatedAt  = "created_at"
	colImagePath  = "image_path"
)

// recordColumns is the canonical header order for newly written containers.
var recordColumns = []string{
	colDate,
	colTitle,
	colImageBrief,
	colBody,
	colStatus,
	colCreatedAt,
	colImagePath,
}

// requiredColumns must be present in a container header for it to decode.
// Everything else is optional and defaults to empty, which is how files
// written before the image_path column existed stay readable.
var requiredColumns = []string{colDate, colTitle, colStatus}

// columnIndex maps a column name to its position in a specific container's header.
type columnIndex map[string]int

// parseHeader builds a column index from a container's header row.
func parseHeader(header []string) (columnIndex, error) {
	idx := make(columnIndex, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrMalformedRecord, name)
		}
	}
	return idx, nil
}

// encodeRecord serializes a post as a row in canonical column order.
// It never fails for well-formed posts; csv.Writer handles quoting of
// embedded delimiters, quotes, and newlines.
func encodeRecord(p *models.Post) []string {
	createdAt := ""
	if !p.CreatedAt.IsZero() {
		createdAt = p.CreatedAt.UTC().Format(time.RFC3339Nano)
	}
	return []string{
		p.Date.Format(models.DateFormat),
		p.Title,
		p.ImageBrief,
		p.Body,
		p.Status,
		createdAt,
		p.ImagePath,
	}
}

// decodeRecord deserializes one row using the container's column index.
func decodeRecord(idx columnIndex, row []string) (*models.Post, error) {
	date, err := time.Parse(models.DateFormat, field(idx, row, colDate))
	if err != nil {
		return nil, fmt.Errorf("%w: bad date: %v", ErrMalformedRecord, err)
	}

	status := field(idx, row, colStatus)
	if status != models.StatusDraft && status != models.StatusPublished {
		return nil, fmt.Errorf("%w: unknown status %q", ErrMalformedRecord, status)
	}

	p := &models.Post{
		Date:       date,
		Title:      field(idx, row, colTitle),
		ImageBrief: field(idx, row, colImageBrief),
		Body:       field(idx, row, colBody),
		Status:     status,
		ImagePath:  field(idx, row, colImagePath),
	}

	if raw := field(idx, row, colCreatedAt); raw != "" {
		createdAt, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: bad created_at: %v", ErrMalformedRecord, err)
		}
		p.CreatedAt = createdAt.UTC()
	}

	return p, nil
}

// field returns the named column's value, or empty if the column is absent
// from the header or the row is short.
func field(idx columnIndex, row []string, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
