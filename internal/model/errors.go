package model

import "errors"

// Load-time validation failures. Wrapped by the store with the offending
// record; test with errors.Is.
var (
	ErrMalformedInput = errors.New("malformed input")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrDuplicateID    = errors.New("duplicate id")
)
