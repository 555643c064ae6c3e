package search

import "errors"

var (
	// ErrConfiguration is returned by New for settings the loop cannot run with.
	ErrConfiguration = errors.New("invalid search configuration")

	// ErrStorageUnavailable is wrapped by Recorder implementations for any
	// failure of the backing store.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
