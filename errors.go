package xtee

import "errors"

var (
	// ErrInvalidConfig wraps every Config validation failure.
	ErrInvalidConfig = errors.New("xtee: invalid config")
	// ErrUnknownBackend is returned when Config.Backend names no registered backend.
	ErrUnknownBackend = errors.New("xtee: unknown backend")
	// ErrNoAdapter is returned by Attach and Builder.Build for a nil adapter.
	ErrNoAdapter = errors.New("xtee: adapter is nil")
)
