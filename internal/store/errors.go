package store

import "errors"

// ErrNotFound is returned by mutating operations targeting a missing record.
var ErrNotFound = errors.New("store: not found")
