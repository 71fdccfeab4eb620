// ABOUTME: Interface definition for draft post persistence.
// ABOUTME: Defines the contract the agent tool layer and CLI program against.
package storage

import (
	"time"

	"github.com/causa-colectivo/borrador/internal/models"
)

// ListOptions filters posts returned by List. Zero time bounds are unbounded;
// an empty Status matches both drafts and published posts.
type ListOptions struct {
	From   time.Time
	To     time.Time
	Status string
}

// Stats summarizes the state of the store.
type Stats struct {
	Drafts     int
	Published  int
	Containers int
}

// PostStore defines operations for draft post persistence.
type PostStore interface {
	// Create appends a new record to the canonical container for the post's
	// date, creating the container if absent. Never overwrites existing records.
	Create(post *models.Post) error

	// Find returns the first record matching (date, title) in file order,
	// searching the canonical container first and falling back to every
	// other container. Returns ErrRecordNotFound if no container has a match.
	Find(date time.Time, title string) (*models.Post, error)

	// List returns posts matching the filter, across all containers.
	List(opts ListOptions) ([]*models.Post, error)

	// UpdateImagePath patches only the image_path field of the matching
	// record. Returns ErrRecordNotFound if no match exists in any container.
	UpdateImagePath(date time.Time, title, path string) error

	// UpdateContent patches the title, body, and optionally the image brief
	// of the matching record.
	UpdateContent(date time.Time, title, newTitle, newBody, newImageBrief string) error

	// MarkPublished flips a draft to published and appends a copy to the
	// published history. Returns ErrInvalidTransition if already published.
	MarkPublished(date time.Time, title string) error

	// Delete removes the matching record. A missing match is a silent no-op
	// so bulk deletes stay simple.
	Delete(date time.Time, title string) error

	// ListPublished returns the published history in append order.
	ListPublished() ([]*models.Post, error)

	// Stats returns counts of drafts, published posts, and containers.
	Stats() (Stats, error)

	// Close releases any resources held by the store.
	Close() error
}
