package strategy

import (
	"github.com/rickgorman/hashsearch/internal/counter"
)

// ChaseTraversal iterates the hash: the digest becomes the next candidate.
type ChaseTraversal struct {
	base
	cycles  *CycleTracker
	revisit bool
}

func newChase(b base, seed []byte) (Traversal, error) {
	return &ChaseTraversal{base: b, cycles: NewCycleTracker(len(seed))}, nil
}

// Observe records candidate on the trajectory and reports a revisit when
// digest was already on it. Fix points are left to Advance.
func (c *ChaseTraversal) Observe(candidate, digest []byte) Event {
	if c.cycles == nil {
		return Event{}
	}
	c.cycles.Visit(candidate)
	if counter.Equal(candidate, digest) || !c.cycles.Seen(digest) {
		return Event{}
	}
	c.revisit = true
	return Event{Kind: Revisit, Start: counter.Clone(digest), Length: c.cycles.Len()}
}

// Advance writes digest into next. A fix point wins over everything else.
func (c *ChaseTraversal) Advance(next, candidate, digest []byte) Stop {
	if counter.Equal(candidate, digest) {
		return FixPoint
	}
	if c.revisit {
		return Cycle
	}
	copy(next, digest)
	if c.reachedFinal(next) {
		return FinalValue
	}
	return None
}
