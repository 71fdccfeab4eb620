// ABOUTME: Input validation for the settings wizard.
// ABOUTME: Parses and range-checks posts_per_day and cleanup_months values.
package tui

import (
	"fmt"
	"strconv"
	"strings"
)

// Valid range for posts per day, mirrored from the settings store.
const (
	minPostsPerDay = 1
	maxPostsPerDay = 6
)

// ValidatePostsPerDay parses a posts-per-day value and checks its range.
func ValidatePostsPerDay(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("posts per day must be a number")
	}
	if n < minPostsPerDay || n > maxPostsPerDay {
		return 0, fmt.Errorf("posts per day must be between %d and %d", minPostsPerDay, maxPostsPerDay)
	}
	return n, nil
}

// ValidateCleanupMonths parses a cleanup-months value and checks it is positive.
func ValidateCleanupMonths(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("cleanup months must be a number")
	}
	if n < 1 {
		return 0, fmt.Errorf("cleanup months must be at least 1")
	}
	return n, nil
}
