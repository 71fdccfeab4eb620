// ABOUTME: Sentinel errors for the draft store error taxonomy.
// ABOUTME: Callers match these with errors.Is to distinguish failure classes.
package storage

import "errors"

var (
	// ErrMalformedRecord indicates a container row or header that cannot be decoded.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrRecordNotFound indicates no record matched (date, title) in any container.
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidTransition indicates a status change that is not forward-only.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidSetting indicates a settings value outside its valid range.
	ErrInvalidSetting = errors.New("invalid setting")
)
