package cache

import "errors"

var (
	// ErrDBNil is returned by New without a database connection.
	ErrDBNil = errors.New("cache database connection is nil")

	// ErrUnknownTag is returned when no loader exists for a tag.
	ErrUnknownTag = errors.New("cache tag is unknown")

	// ErrForbidden is returned when the actor may not read the cached rows.
	ErrForbidden = errors.New("actor is not allowed to read cached rows")

	// ErrLoadFailed is returned when the loader produced no item.
	ErrLoadFailed = errors.New("failed to load rows into cache")
)
