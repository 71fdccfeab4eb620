// ABOUTME: Tests for the CSV record codec.
// ABOUTME: Covers the round-trip law, optional columns, and malformed-record classification.
package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/causa-colectivo/borrador/internal/models"
)

func TestCodecRoundTrip(t *testing.T) {
	posts := []*models.Post{
		{
			Date:       time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			Title:      "Marcha por el humedal",
			ImageBrief: "Humedal al amanecer, tonos verdes y azules",
			Body:       "Este sábado nos vemos en el humedal. #MedioAmbiente #Usaquén",
			Status:     models.StatusDraft,
			CreatedAt:  time.Date(2025, 2, 20, 9, 30, 0, 123456789, time.UTC),
			ImagePath:  "imagenes/marcha.png",
		},
		{
			// Free text with embedded delimiters, quotes, and newlines.
			Date:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			Title:  `Cierre, de año; "especial"`,
			Body:   "Línea uno\nLínea dos, con coma\n\"comillas\"",
			Status: models.StatusPublished,
		},
	}

	idx, err := parseHeader(recordColumns)
	if err != nil {
		t.Fatalf("parseHeader error: %v", err)
	}

	for _, p := range posts {
		got, err := decodeRecord(idx, encodeRecord(p))
		if err != nil {
			t.Fatalf("decodeRecord(%q) error: %v", p.Title, err)
		}
		if !got.Date.Equal(p.Date) {
			t.Errorf("Date: got %v, want %v", got.Date, p.Date)
		}
		if got.Title != p.Title {
			t.Errorf("Title: got %q, want %q", got.Title, p.Title)
		}
		if got.ImageBrief != p.ImageBrief {
			t.Errorf("ImageBrief: got %q, want %q", got.ImageBrief, p.ImageBrief)
		}
		if got.Body != p.Body {
			t.Errorf("Body: got %q, want %q", got.Body, p.Body)
		}
		if got.Status != p.Status {
			t.Errorf("Status: got %q, want %q", got.Status, p.Status)
		}
		if !got.CreatedAt.Equal(p.CreatedAt) {
			t.Errorf("CreatedAt: got %v, want %v", got.CreatedAt, p.CreatedAt)
		}
		if got.ImagePath != p.ImagePath {
			t.Errorf("ImagePath: got %q, want %q", got.ImagePath, p.ImagePath)
		}
	}
}

func TestCodecMissingOptionalColumns(t *testing.T) {
	// A container written before the image_path and created_at columns existed.
	idx, err := parseHeader([]string{colDate, colTitle, colImageBrief, colBody, colStatus})
	if err != nil {
		t.Fatalf("parseHeader error: %v", err)
	}

	p, err := decodeRecord(idx, []string{"2023-06-15", "Festival", "afiche", "Contenido", "draft"})
	if err != nil {
		t.Fatalf("decodeRecord error: %v", err)
	}
	if p.ImagePath != "" {
		t.Errorf("ImagePath: got %q, want empty", p.ImagePath)
	}
	if !p.CreatedAt.IsZero() {
		t.Errorf("CreatedAt: got %v, want zero", p.CreatedAt)
	}
}

func TestCodecMissingRequiredColumn(t *testing.T) {
	_, err := parseHeader([]string{colDate, colImageBrief, colBody, colStatus})
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestCodecMalformedValues(t *testing.T) {
	idx, err := parseHeader(recordColumns)
	if err != nil {
		t.Fatalf("parseHeader error: %v", err)
	}

	cases := []struct {
		name string
		row  []string
	}{
		{"bad date", []string{"not-a-date", "t", "", "", "draft", "", ""}},
		{"bad status", []string{"2025-01-01", "t", "", "", "pending", "", ""}},
		{"bad created_at", []string{"2025-01-01", "t", "", "", "draft", "yesterday", ""}},
	}
	for _, tc := range cases {
		if _, err := decodeRecord(idx, tc.row); !errors.Is(err, ErrMalformedRecord) {
			t.Errorf("%s: expected ErrMalformedRecord, got %v", tc.name, err)
		}
	}
}

func TestCodecShortRow(t *testing.T) {
	idx, err := parseHeader(recordColumns)
	if err != nil {
		t.Fatalf("parseHeader error: %v", err)
	}

	// Rows shorter than the header decode with trailing fields empty.
	p, err := decodeRecord(idx, []string{"2025-01-01", "Corto", "", "", "draft"})
	if err != nil {
		t.Fatalf("decodeRecord error: %v", err)
	}
	if p.ImagePath != "" || !p.CreatedAt.IsZero() {
		t.Errorf("expected empty trailing fields, got image_path=%q created_at=%v", p.ImagePath, p.CreatedAt)
	}
}
