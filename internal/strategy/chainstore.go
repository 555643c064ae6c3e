package strategy

import (
	"github.com/rickgorman/hashsearch/internal/counter"
)

// ChainStoreTraversal chases from the seed and reports the closure once the
// trajectory returns to it.
type ChainStoreTraversal struct {
	ChaseTraversal
	seed   []byte
	steps  uint64
	closed bool
}

func newChainStore(b base, seed []byte) (Traversal, error) {
	return &ChainStoreTraversal{
		ChaseTraversal: ChaseTraversal{base: b, cycles: NewCycleTracker(len(seed))},
		seed:           seed,
	}, nil
}

// Observe counts the step and reports a closure when digest is the seed.
func (c *ChainStoreTraversal) Observe(candidate, digest []byte) Event {
	c.steps++
	if counter.Equal(digest, c.seed) {
		c.closed = true
		return Event{Kind: ChainClosed, Start: counter.Clone(c.seed), Length: c.steps}
	}
	return c.ChaseTraversal.Observe(candidate, digest)
}

// Advance stops with Cycle after a closure, otherwise it chases.
func (c *ChainStoreTraversal) Advance(next, candidate, digest []byte) Stop {
	if counter.Equal(candidate, digest) {
		return FixPoint
	}
	if c.closed {
		return Cycle
	}
	return c.ChaseTraversal.Advance(next, candidate, digest)
}

// ChainLength returns the number of steps taken from the seed.
func (c *ChainStoreTraversal) ChainLength() uint64 {
	return c.steps
}
