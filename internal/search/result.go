package search

import (
	"time"

	"github.com/rickgorman/hashsearch/internal/strategy"
)

// Reason is why a search terminated.
type Reason uint8

const (
	DomainExhausted Reason = iota
	FinalValueReached
	FixPointReached
	CycleDetected
	UserQuit
	ExternalCancellation
)

func (r Reason) String() string {
	switch r {
	case DomainExhausted:
		return "domain exhausted"
	case FinalValueReached:
		return "final value reached"
	case FixPointReached:
		return "fix point reached"
	case CycleDetected:
		return "cycle detected"
	case UserQuit:
		return "user quit"
	case ExternalCancellation:
		return "cancelled"
	default:
		return "unknown"
	}
}

func reasonFor(s strategy.Stop) Reason {
	switch s {
	case strategy.FinalValue:
		return FinalValueReached
	case strategy.FixPoint:
		return FixPointReached
	case strategy.Cycle:
		return CycleDetected
	default:
		return DomainExhausted
	}
}

// Result describes a finished search.
type Result struct {
	Reason          Reason
	InputsProcessed uint64
	// Last is the last candidate hashed, or the chain start in chain-length mode.
	Last      []byte
	SessionID string
	Elapsed   time.Duration
}
