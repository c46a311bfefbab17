package types

import "errors"

// Standard errors returned by the persistence layer.
var (
	// ErrNotFound is returned by Get operations when no row matches the id.
	ErrNotFound = errors.New("not found")

	// ErrInvalidID is returned when an operation receives an empty id.
	ErrInvalidID = errors.New("invalid id")

	// ErrValidation wraps input validation failures. No write is performed
	// when a create or update input fails validation.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidBackup is returned by Import when the payload's top-level
	// data object is missing or malformed.
	ErrInvalidBackup = errors.New("invalid backup payload")

	// ErrPrefsClear wraps failures of the preference-key wipe phase of a
	// reset. The database wipe phase reports its own errors; callers can
	// retry the preference phase independently.
	ErrPrefsClear = errors.New("clearing cached preferences")
)
