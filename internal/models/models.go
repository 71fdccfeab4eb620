// ABOUTME: Core data model for social media draft posts and settings.
// ABOUTME: Provides constructor functions, status constants, and date helpers.
package models

import (
	"time"
)

// DateFormat is the calendar-date layout used for post dates and container names.
const DateFormat = "2006-01-02"

// Post status values. Transitions are forward-only: draft -> published.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Post represents a single social media draft.
type Post struct {
	Date       time.Time // calendar date the post targets, day precision
	Title      string
	ImageBrief string // free-text brief for image generation
	Body       string // post content, may embed hashtags
	Status     string
	CreatedAt  time.Time
	ImagePath  string // path to generated image asset, empty until generated
}

// NewPost creates a draft post with the current time as CreatedAt.
func NewPost(date time.Time, title, imageBrief, body string) *Post {
	return &Post{
		Date:       Day(date),
		Title:      title,
		ImageBrief: imageBrief,
		Body:       body,
		Status:     StatusDraft,
		CreatedAt:  time.Now().UTC(),
	}
}

// Day truncates a time to its calendar date in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two times fall on the same UTC calendar date.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// Settings holds the process-wide configuration persisted alongside the drafts.
type Settings struct {
	PostsPerDay   int `json:"posts_per_day"`
	CleanupMonths int `json:"cleanup_months"`
}

// DefaultSettings returns the settings used when no backing file exists.
func DefaultSettings() Settings {
	return Settings{
		PostsPerDay:   3,
		CleanupMonths: 4,
	}
}
