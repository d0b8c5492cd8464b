package errors

import "errors"

// Domain errors
var (
	// Target errors
	ErrEmptyTarget   = errors.New("target cannot be empty")
	ErrInvalidTarget = errors.New("invalid target URL")

	// Probe errors
	ErrTransport = errors.New("transport failure")

	// Check errors
	ErrCheckPanicked = errors.New("check panicked")
	ErrCheckSkipped  = errors.New("check could not run")
)
