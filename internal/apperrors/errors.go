// Package apperrors defines sentinel errors shared across the application.
//
// Callers classify failures with errors.Is; the HTTP layer maps each
// sentinel to a status code in exactly one place. Errors that match no
// sentinel are treated as internal failures.
package apperrors

import "errors"

var (
	// ErrInvalid marks malformed or missing input.
	ErrInvalid = errors.New("invalid input")

	// ErrNotFound marks a record or upstream resource that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrBadGateway marks an upstream service that could not be reached
	// or answered with a failure.
	ErrBadGateway = errors.New("bad gateway")
)
