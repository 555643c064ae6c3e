// Package strategy provides the traversal policies that choose the next
// candidate of a hash-domain search.
package strategy

import (
	"fmt"
)

// Kind names a traversal policy.
type Kind uint8

const (
	// Sequential increments the candidate as a big-endian integer.
	Sequential Kind = iota
	// Random draws every candidate uniformly at random.
	Random
	// Chase feeds each digest back as the next candidate.
	Chase
	// ChainLength measures the cycle length through successive chain starts.
	ChainLength
	// ChainStore chases from the seed and records the cycle back to it.
	ChainStore
)

func (k Kind) String() string {
	switch k {
	case Sequential:
		return "sequential"
	case Random:
		return "random"
	case Chase:
		return "chase"
	case ChainLength:
		return "chain-length"
	case ChainStore:
		return "chain-store"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Chases reports whether the kind feeds digests back as candidates.
func (k Kind) Chases() bool {
	return k == Chase || k == ChainStore
}

// Mode is the traversal selected for a session.
type Mode struct {
	Kind Kind
	// MaxChain abandons a chain once its length exceeds it. Zero is unlimited.
	// Only used by ChainLength.
	MaxChain uint64
	// RandSeed seeds Random. Zero draws a seed from the operating system.
	RandSeed uint64
}

func (m Mode) String() string {
	return m.Kind.String()
}

// Stop tells the search loop whether to keep going and why not.
type Stop uint8

const (
	// None means the next candidate was written.
	None Stop = iota
	// DomainExhausted means the counter overflowed.
	DomainExhausted
	// FinalValue means the next candidate equals the configured final value.
	FinalValue
	// FixPoint means the candidate hashed to itself.
	FixPoint
	// Cycle means the trajectory returned to a value it already visited.
	Cycle
)

func (s Stop) String() string {
	switch s {
	case None:
		return "none"
	case DomainExhausted:
		return "domain exhausted"
	case FinalValue:
		return "final value"
	case FixPoint:
		return "fix point"
	case Cycle:
		return "cycle"
	default:
		return "unknown"
	}
}

// EventKind classifies what a traversal observed about one hash application.
type EventKind uint8

const (
	NoEvent EventKind = iota
	// ChainClosed means the digest equals the chain start.
	ChainClosed
	// ChainAbandoned means the chain grew past the maximum length.
	ChainAbandoned
	// Revisit means a chase reached a value already on its trajectory.
	Revisit
)

// Event is what Observe reports. Start is a copy the caller may keep.
type Event struct {
	Kind EventKind
	// Start is the chain start, or the revisited value for Revisit.
	Start []byte
	// Length is the chain length, or the trajectory length for Revisit.
	Length uint64
}

// Traversal chooses the next candidate from the current one and its digest.
//
// For each hash application the loop calls Observe, then, unless it stops
// for another reason, Advance. Implementations own their internal state;
// candidate and digest are only read.
type Traversal interface {
	Mode() Mode

	// Observe records the digest of candidate and reports chain events.
	Observe(candidate, digest []byte) Event

	// Advance writes the next candidate into next. When it returns anything
	// other than None the contents of next are unspecified.
	Advance(next, candidate, digest []byte) Stop

	// Position is the value checkpoints and status report for candidate:
	// the chain start in ChainLength mode, candidate otherwise.
	Position(candidate []byte) []byte

	// ChainLength is the running chain length, zero for modes without chains.
	ChainLength() uint64
}

// base provides the mode and final value shared by all traversals.
type base struct {
	mode  Mode
	final []byte
}

// Mode returns the traversal mode.
func (b *base) Mode() Mode {
	return b.mode
}

// Position returns candidate.
func (b *base) Position(candidate []byte) []byte {
	return candidate
}

// ChainLength returns zero.
func (b *base) ChainLength() uint64 {
	return 0
}

// reachedFinal reports whether v equals the configured final value.
func (b *base) reachedFinal(v []byte) bool {
	return b.final != nil && string(v) == string(b.final)
}

// FormatError creates a formatted error message for traversal setup.
func FormatError(kind Kind, operation string, err error) error {
	return fmt.Errorf("traversal %s: %s: %w", kind, operation, err)
}
