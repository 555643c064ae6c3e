// Package similarity scores how close a hash digest is to its input.
package similarity

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrLengthMismatch is returned when the two sequences differ in length.
var ErrLengthMismatch = errors.New("cannot compare differing length byte sequences")

// Kind selects the similarity index used by a search.
type Kind uint8

const (
	// Bit counts matching bits.
	Bit Kind = iota
	// Byte counts matching bytes.
	Byte
)

func (k Kind) String() string {
	switch k {
	case Bit:
		return "bit"
	case Byte:
		return "byte"
	default:
		return "unknown"
	}
}

// Max returns the highest score possible for sequences of n bytes.
func (k Kind) Max(n int) int {
	if k == Bit {
		return 8 * n
	}
	return n
}

// Score computes the similarity of a and b for the kind.
func (k Kind) Score(a, b []byte) (int, error) {
	if k == Byte {
		return ByteSimilarity(a, b)
	}
	return BitSimilarity(a, b)
}

// MustScore is Score for callers that guarantee equal lengths.
// A mismatch is a programming error and panics.
func (k Kind) MustScore(a, b []byte) int {
	score, err := k.Score(a, b)
	if err != nil {
		panic(err)
	}
	return score
}

// ByteSimilarity counts the positions where a and b hold the same byte.
func ByteSimilarity(a, b []byte) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d and %d", ErrLengthMismatch, len(a), len(b))
	}

	count := 0
	for i := range a {
		if a[i] == b[i] {
			count++
		}
	}
	return count, nil
}

// BitSimilarity counts the bits that match between a and b,
// that is 8*len(a) minus the population count of a XOR b.
func BitSimilarity(a, b []byte) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d and %d", ErrLengthMismatch, len(a), len(b))
	}

	differing := 0
	for i := range a {
		differing += bits.OnesCount8(a[i] ^ b[i])
	}
	return 8*len(a) - differing, nil
}
