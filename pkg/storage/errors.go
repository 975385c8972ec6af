package storage

import "errors"

// ErrNotFound is returned when a lookup by id matches nothing.
var ErrNotFound = errors.New("not found")

// ErrPersistence wraps failures of the underlying key-value store (quota
// exceeded, serialization error). Stores recover by re-reading the last
// successfully persisted state, so callers still receive a usable list
// alongside this error.
var ErrPersistence = errors.New("persistence failure")
