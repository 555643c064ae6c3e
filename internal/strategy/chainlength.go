package strategy

import (
	"github.com/rickgorman/hashsearch/internal/counter"
)

// ChainTracker measures, for each chain start C, the smallest L with
// h^L(C) == C. Chains longer than the mode's MaxChain are abandoned. After
// a closure or abandonment the start advances by one and the walk restarts.
type ChainTracker struct {
	base
	start   []byte
	scratch []byte
	length  uint64
	pending EventKind
}

func newChainTracker(b base, seed []byte) (Traversal, error) {
	return &ChainTracker{
		base:    b,
		start:   seed,
		scratch: make([]byte, len(seed)),
	}, nil
}

// Observe counts one hash application and reports closure or abandonment.
func (t *ChainTracker) Observe(_, digest []byte) Event {
	t.length++
	switch {
	case counter.Equal(digest, t.start):
		t.pending = ChainClosed
	case t.mode.MaxChain > 0 && t.length > t.mode.MaxChain:
		t.pending = ChainAbandoned
	default:
		t.pending = NoEvent
		return Event{}
	}
	return Event{Kind: t.pending, Start: counter.Clone(t.start), Length: t.length}
}

// Advance continues the walk with digest, or restarts it at the next chain
// start after a closure or abandonment.
func (t *ChainTracker) Advance(next, _, digest []byte) Stop {
	if t.pending == NoEvent {
		copy(next, digest)
		return None
	}

	t.pending = NoEvent
	t.length = 0
	copy(t.scratch, t.start)
	if counter.Increment(t.scratch) == counter.Overflow {
		return DomainExhausted
	}
	copy(t.start, t.scratch)
	copy(next, t.start)
	if t.reachedFinal(t.start) {
		return FinalValue
	}
	return None
}

// Position returns the current chain start.
func (t *ChainTracker) Position(_ []byte) []byte {
	return t.start
}

// ChainLength returns the length of the chain walked so far.
func (t *ChainTracker) ChainLength() uint64 {
	return t.length
}

// Start returns a copy of the current chain start.
func (t *ChainTracker) Start() []byte {
	return counter.Clone(t.start)
}
