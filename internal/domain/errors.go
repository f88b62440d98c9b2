package domain

import "errors"

// Domain errors returned by the public API. Check them with errors.Is.
var (
	// ErrInvalidConfig is returned when configuration validation fails.
	// Polynomial, chunk size, probability and unit size problems all wrap it.
	ErrInvalidConfig = errors.New("crcsim: invalid configuration")

	// ErrInvalidTransition is returned when a burst stage is entered out of order.
	ErrInvalidTransition = errors.New("crcsim: invalid stage transition")

	// ErrUnknownEngine is returned for an engine name other than "division" or "table".
	ErrUnknownEngine = errors.New("crcsim: unknown engine")
)
