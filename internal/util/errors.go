package util

import "errors"

// Sentinel errors for common failure modes
var (
	// ErrNotFound indicates the ladder service answered with a non-success
	// status. Fatal for bulk prefill requests, tolerated for trace downloads.
	ErrNotFound = errors.New("not found")

	// ErrInvalidConfig indicates invalid configuration
	ErrInvalidConfig = errors.New("invalid configuration")
)
