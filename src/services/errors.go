package services

import (
	"errors"
	"strings"
)

// Sentinel errors for explicit error handling
// These errors allow callers to distinguish between different failure modes
// using errors.Is() instead of string matching

var (
	// ErrInvalidCredentials indicates a failed login. The same error is
	// returned for unknown emails and wrong passwords so responses never
	// reveal whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = errors.New("not found")
)

// ValidationError carries every problem found in a mutation payload.
// Failures are collected, not short-circuited, so a caller sees all of
// them at once.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}
