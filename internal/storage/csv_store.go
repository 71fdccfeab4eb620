// ABOUTME: CSV-backed draft store with whole-file read/rewrite semantics.
// ABOUTME: Owns the on-disk layout under the publications directory; callers never touch files directly.
package storage

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/causa-colectivo/borrador/internal/models"
)

// On-disk layout under the base directory.
const (
	draftsDirName    = "drafts"
	imagesDirName    = "imagenes"
	settingsFileName = "settings.json"
	publishedName    = "published_posts.csv"
)

// CSVStore stores draft posts as CSV containers under a base directory.
//
// The discipline is whole-file read, whole-file rewrite. Concurrent writers
// risk lost updates; the tool is single-operator and this is a documented
// limitation, not something the store guards against.
type CSVStore struct {
	baseDir       string
	draftsDir     string
	imagesDir     string
	publishedPath string
	index         *ContainerIndex
	log           zerolog.Logger
}

// NewCSVStore opens a store rooted at baseDir, creating the directory
// layout if it does not exist.
func NewCSVStore(baseDir string, logger zerolog.Logger) (*CSVStore, error) {
	draftsDir := filepath.Join(baseDir, draftsDirName)
	imagesDir := filepath.Join(baseDir, imagesDirName)
	for _, dir := range []string{baseDir, draftsDir, imagesDir} {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	return &CSVStore{
		baseDir:       baseDir,
		draftsDir:     draftsDir,
		imagesDir:     imagesDir,
		publishedPath: filepath.Join(baseDir, publishedName),
		index:         NewContainerIndex(draftsDir),
		log:           logger,
	}, nil
}

// BaseDir returns the store's base directory.
func (s *CSVStore) BaseDir() string { return s.baseDir }

// ImagesDir returns the directory where generated image assets live.
func (s *CSVStore) ImagesDir() string { return s.imagesDir }

// SettingsPath returns the path of the settings file inside the store.
func (s *CSVStore) SettingsPath() string { return filepath.Join(s.baseDir, settingsFileName) }

// Index returns the store's container index.
func (s *CSVStore) Index() *ContainerIndex { return s.index }

// Create appends a new record to the canonical container for the post's date.
func (s *CSVStore) Create(post *models.Post) error {
	if post.Status == "" {
		post.Status = models.StatusDraft
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}
	post.Date = models.Day(post.Date)

	path := s.index.CanonicalPath(post.Date)
	existing, err := s.readContainer(path)
	if err != nil && !os.IsNotExist(err) {
		// Never rewrite a container we could not fully read; appending onto
		// a partial parse would drop the records we failed to decode.
		return fmt.Errorf("failed to read container %s: %w", path, err)
	}

	return s.writeContainer(path, append(existing, post))
}

// Find returns the first record matching (date, title) in file order.
func (s *CSVStore) Find(date time.Time, title string) (*models.Post, error) {
	_, posts, i, err := s.locate(date, title)
	if err != nil {
		return nil, err
	}
	return posts[i], nil
}

// List returns posts matching the filter across every container, sorted by
// date ascending. Malformed containers are skipped with a warning.
func (s *CSVStore) List(opts ListOptions) ([]*models.Post, error) {
	paths, err := s.index.AllContainers()
	if err != nil {
		return nil, err
	}

	var all []*models.Post
	for _, path := range paths {
		posts, err := s.readContainer(path)
		if err != nil {
			s.log.Warn().Err(err).Str("container", path).Msg("skipping unreadable container")
			continue
		}
		for _, p := range posts {
			if opts.Status != "" && p.Status != opts.Status {
				continue
			}
			if !opts.From.IsZero() && p.Date.Before(models.Day(opts.From)) {
				continue
			}
			if !opts.To.IsZero() && p.Date.After(models.Day(opts.To)) {
				continue
			}
			all = append(all, p)
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date.Before(all[j].Date)
	})
	return all, nil
}

// UpdateImagePath patches only the image_path field of the matching record.
func (s *CSVStore) UpdateImagePath(date time.Time, title, path string) error {
	container, posts, i, err := s.locate(date, title)
	if err != nil {
		return err
	}
	posts[i].ImagePath = path
	return s.writeContainer(container, posts)
}

// UpdateContent patches the title and body of the matching record, and the
// image brief when newImageBrief is non-empty.
func (s *CSVStore) UpdateContent(date time.Time, title, newTitle, newBody, newImageBrief string) error {
	container, posts, i, err := s.locate(date, title)
	if err != nil {
		return err
	}
	posts[i].Title = newTitle
	posts[i].Body = newBody
	if newImageBrief != "" {
		posts[i].ImageBrief = newImageBrief
	}
	return s.writeContainer(container, posts)
}

// MarkPublished flips a draft to published. The transition is forward-only:
// publishing an already-published record fails with ErrInvalidTransition.
// On success a copy of the record is appended to the published history.
func (s *CSVStore) MarkPublished(date time.Time, title string) error {
	container, posts, i, err := s.locate(date, title)
	if err != nil {
		return err
	}
	if posts[i].Status == models.StatusPublished {
		return fmt.Errorf("%w: %q on %s is already published",
			ErrInvalidTransition, title, date.Format(models.DateFormat))
	}

	posts[i].Status = models.StatusPublished
	if err := s.writeContainer(container, posts); err != nil {
		return err
	}
	return s.appendPublished(posts[i])
}

// Delete removes the matching record. A missing match is a silent no-op.
// The associated image asset, if any, is left in place; only the retention
// sweeper removes assets.
func (s *CSVStore) Delete(date time.Time, title string) error {
	container, posts, i, err := s.locate(date, title)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil
		}
		return err
	}

	remaining := append(posts[:i:i], posts[i+1:]...)
	if len(remaining) == 0 {
		return os.Remove(container)
	}
	return s.writeContainer(container, remaining)
}

// Stats returns counts of drafts, published posts, and containers.
func (s *CSVStore) Stats() (Stats, error) {
	paths, err := s.index.AllContainers()
	if err != nil {
		return Stats{}, err
	}

	drafts, err := s.List(ListOptions{Status: models.StatusDraft})
	if err != nil {
		return Stats{}, err
	}
	published, err := s.ListPublished()
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		Drafts:     len(drafts),
		Published:  len(published),
		Containers: len(paths),
	}, nil
}

// ExportForImages writes pending drafts to a temp CSV in the reduced schema
// the image generator consumes. A zero date exports every pending draft.
// Returns the export path, or empty when there is nothing to export.
func (s *CSVStore) ExportForImages(date time.Time) (string, error) {
	opts := ListOptions{Status: models.StatusDraft}
	if !date.IsZero() {
		opts.From = models.Day(date)
		opts.To = models.Day(date)
	}
	drafts, err := s.List(opts)
	if err != nil {
		return "", err
	}
	if len(drafts) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{colDate, colTitle, colImageBrief, colBody})
	for _, p := range drafts {
		_ = w.Write([]string{
			p.Date.Format(models.DateFormat),
			p.Title,
			p.ImageBrief,
			p.Body,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to encode export: %w", err)
	}

	path := filepath.Join(s.baseDir, "temp_export_"+uuid.NewString()[:8]+".csv")
	if err := atomicWrite(path, buf.Bytes()); err != nil {
		return "", err
	}
	return path, nil
}

// Close releases any resources held by the store.
func (s *CSVStore) Close() error {
	return nil
}

// locate finds the first record matching (date, title) in file order,
// searching the canonical container first and then every other container.
// When several records share (date, title) the first match wins; the key is
// only unique by convention. Returns the container path, its full record
// slice, and the match position so update paths can rewrite in place.
func (s *CSVStore) locate(date time.Time, title string) (string, []*models.Post, int, error) {
	paths, err := s.index.ContainersFor(date)
	if err != nil {
		return "", nil, 0, err
	}

	for _, path := range paths {
		posts, err := s.readContainer(path)
		if err != nil {
			s.log.Warn().Err(err).Str("container", path).Msg("skipping unreadable container")
			continue
		}
		for i, p := range posts {
			if models.SameDay(p.Date, date) && p.Title == title {
				return path, posts, i, nil
			}
		}
	}

	return "", nil, 0, fmt.Errorf("%w: %q on %s",
		ErrRecordNotFound, title, models.Day(date).Format(models.DateFormat))
}

// readContainer reads every record in a container. Rows that fail to decode
// are skipped with a warning; a missing or headerless file is an error for
// the caller to classify.
func (s *CSVStore) readContainer(path string) ([]*models.Post, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // rows may predate newer columns

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable header: %v", ErrMalformedRecord, err)
	}
	idx, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	var posts []*models.Post
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			s.log.Warn().Err(err).Str("container", path).Msg("skipping unreadable row")
			continue
		}
		p, err := decodeRecord(idx, row)
		if err != nil {
			s.log.Warn().Err(err).Str("container", path).Msg("skipping malformed record")
			continue
		}
		posts = append(posts, p)
	}
	return posts, nil
}

// writeContainer rewrites a container in full with the canonical header.
func (s *CSVStore) writeContainer(path string, posts []*models.Post) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(recordColumns)
	for _, p := range posts {
		_ = w.Write(encodeRecord(p))
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to encode container: %w", err)
	}
	return atomicWrite(path, buf.Bytes())
}
