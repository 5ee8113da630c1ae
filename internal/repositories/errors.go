package repositories

import "errors"

var (
	// ErrNotFound is returned when no document matches the query.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidID is returned when an identifier is not a valid ObjectID hex.
	ErrInvalidID = errors.New("invalid object id")
)
