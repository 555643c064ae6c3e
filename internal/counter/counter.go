// Package counter treats fixed-width byte slices as big-endian unsigned integers.
package counter

import (
	"bytes"
	"errors"
	"fmt"
)

// Outcome is the result of an increment.
type Outcome uint8

const (
	// Ok means the value was incremented in place.
	Ok Outcome = iota
	// Overflow means the carry left the most significant byte: every value
	// of the width has been enumerated and the bytes wrapped to zero.
	Overflow
)

func (o Outcome) String() string {
	switch o {
	case Ok:
		return "ok"
	case Overflow:
		return "overflow"
	default:
		return "unknown"
	}
}

// ErrTooWide is returned by Align when a value does not fit the width.
var ErrTooWide = errors.New("value does not fit width")

// Increment adds one to b in place, scanning from the least significant
// (last) byte towards index 0.
func Increment(b []byte) Outcome {
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] != 0xFF {
			b[i]++
			return Ok
		}
		// carry
		b[i] = 0x00
	}
	return Overflow
}

// Equal reports whether a and b hold the same bytes.
func Equal(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// Align right-aligns value into a new slice of the given width, padding
// with zero bytes on the left. Leading zero bytes beyond the width are
// dropped; any significant byte beyond it is an error.
func Align(value []byte, width int) ([]byte, error) {
	out := make([]byte, width)
	if len(value) <= width {
		copy(out[width-len(value):], value)
		return out, nil
	}

	excess := value[:len(value)-width]
	for _, b := range excess {
		if b != 0 {
			return nil, fmt.Errorf("%w: %d significant bytes for width %d",
				ErrTooWide, len(bytes.TrimLeft(value, "\x00")), width)
		}
	}
	copy(out, value[len(value)-width:])
	return out, nil
}

// Clone returns a copy of b.
func Clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
