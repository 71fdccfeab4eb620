// ABOUTME: Tests for the post model and date helpers.
// ABOUTME: Covers day truncation, constructor defaults, and settings defaults.
package models

import (
	"testing"
	"time"
)

func TestNewPost(t *testing.T) {
	date := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)
	post := NewPost(date, "Taller de huerto", "manos plantando", "Este sábado #huerto")

	if post.Status != StatusDraft {
		t.Errorf("expected status %q, got %q", StatusDraft, post.Status)
	}
	if !post.Date.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected date truncated to day, got %v", post.Date)
	}
	if post.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if post.ImagePath != "" {
		t.Errorf("expected empty image path, got %q", post.ImagePath)
	}
}

func TestDay(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	// 23:30 on the 14th in UTC-5 is already the 15th in UTC.
	local := time.Date(2026, 3, 14, 23, 30, 0, 0, loc)

	got := Day(local)
	want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Day(%v) = %v, want %v", local, got, want)
	}
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 15, 22, 0, 0, 0, time.UTC)
	next := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	if !SameDay(morning, evening) {
		t.Error("expected same day for morning and evening")
	}
	if SameDay(evening, next) {
		t.Error("expected different days across midnight")
	}
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	if settings.PostsPerDay != 3 {
		t.Errorf("expected default posts per day 3, got %d", settings.PostsPerDay)
	}
	if settings.CleanupMonths != 4 {
		t.Errorf("expected default cleanup months 4, got %d", settings.CleanupMonths)
	}
}
