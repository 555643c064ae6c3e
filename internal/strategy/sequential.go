package strategy

import (
	"github.com/rickgorman/hashsearch/internal/counter"
)

// SequentialTraversal enumerates the domain in increasing numeric order.
type SequentialTraversal struct {
	base
}

func newSequential(b base, _ []byte) (Traversal, error) {
	return &SequentialTraversal{base: b}, nil
}

// Observe reports nothing; every value is visited exactly once.
func (s *SequentialTraversal) Observe(_, _ []byte) Event {
	return Event{}
}

// Advance writes candidate+1 into next. The final value is exclusive.
func (s *SequentialTraversal) Advance(next, candidate, _ []byte) Stop {
	copy(next, candidate)
	if counter.Increment(next) == counter.Overflow {
		return DomainExhausted
	}
	if s.reachedFinal(next) {
		return FinalValue
	}
	return None
}
