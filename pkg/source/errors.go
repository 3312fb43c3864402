package source

import "errors"

// Sentinel errors for source operations.
var (
	ErrInvalidConfig = errors.New("source: invalid configuration")
	ErrUnknownKind   = errors.New("source: unknown kind")
	ErrNotFound      = errors.New("source: file not found")
	ErrAccessDenied  = errors.New("source: access denied")
	ErrFetchFailed   = errors.New("source: fetch failed")
	ErrTooLarge      = errors.New("source: file exceeds size limit")
)
