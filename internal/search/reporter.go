package search

import (
	"time"
)

// Snapshot is the state shown for a status request.
type Snapshot struct {
	Algorithm   string
	Mode        string
	Inputs      uint64
	Current     []byte
	ChainLength uint64
	Elapsed     time.Duration
}

// Reporter receives everything the user should see while the loop runs.
// Slices are copies owned by the callee.
type Reporter interface {
	Hit(hit SimilarityHit)
	ChainClosed(c ChainClosure)
	// ChainAbandoned is only called in verbose mode.
	ChainAbandoned(c ChainClosure)
	// CycleDetected reports the revisited value and the trajectory length.
	CycleDetected(c ChainClosure)
	Status(s Snapshot)
	Paused()
	Resumed()
	Terminated(r Result)
	Warn(msg string)
}

type nopReporter struct{}

func (nopReporter) Hit(SimilarityHit)           {}
func (nopReporter) ChainClosed(ChainClosure)    {}
func (nopReporter) ChainAbandoned(ChainClosure) {}
func (nopReporter) CycleDetected(ChainClosure)  {}
func (nopReporter) Status(Snapshot)             {}
func (nopReporter) Paused()                     {}
func (nopReporter) Resumed()                    {}
func (nopReporter) Terminated(Result)           {}
func (nopReporter) Warn(string)                 {}
