package strategy

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomTraversal draws candidates uniformly from the whole domain.
type RandomTraversal struct {
	base
	src *rand.ChaCha8
}

func newRandom(b base, _ []byte) (Traversal, error) {
	var seed [32]byte
	if b.mode.RandSeed != 0 {
		binary.LittleEndian.PutUint64(seed[:], b.mode.RandSeed)
	} else if _, err := crand.Read(seed[:]); err != nil {
		return nil, FormatError(b.mode.Kind, "seed random source", err)
	}
	return &RandomTraversal{base: b, src: rand.NewChaCha8(seed)}, nil
}

// Observe reports nothing.
func (r *RandomTraversal) Observe(_, _ []byte) Event {
	return Event{}
}

// Advance fills next with random bytes.
func (r *RandomTraversal) Advance(next, _, _ []byte) Stop {
	_, _ = r.src.Read(next) // ChaCha8.Read never fails
	if r.reachedFinal(next) {
		return FinalValue
	}
	return None
}
