package auth

import "errors"

var (
	// ErrMissingToken is returned when a request carries no bearer token.
	ErrMissingToken = errors.New("missing bearer token")

	// ErrUnknownToken is returned when the bearer token is not configured.
	ErrUnknownToken = errors.New("unknown bearer token")

	// ErrNoActor is returned when no authenticated actor is attached to the request.
	ErrNoActor = errors.New("no authenticated actor in request")
)
