package search

import "context"

// Key is an interactive control request.
type Key uint8

const (
	KeyOther Key = iota
	// KeyStatus asks for a snapshot of the current state.
	KeyStatus
	// KeyPause blocks the loop until Wait returns.
	KeyPause
	// KeyQuit ends the search with UserQuit.
	KeyQuit
)

// Controls delivers interactive key presses to the loop.
type Controls interface {
	// Poll returns the next pending key without blocking.
	Poll() (Key, bool)
	// Wait blocks until any key is pressed or ctx is done.
	Wait(ctx context.Context) error
}
