package search

import (
	gohash "hash"
)

// Stepper applies a hash to one candidate at a time, reusing its output buffer.
type Stepper struct {
	h   gohash.Hash
	buf []byte
}

// NewStepper wraps h.
func NewStepper(h gohash.Hash) *Stepper {
	return &Stepper{h: h, buf: make([]byte, 0, h.Size())}
}

// Size returns the digest size in bytes.
func (s *Stepper) Size() int {
	return s.h.Size()
}

// Sum returns the digest of data. The slice is overwritten by the next call.
func (s *Stepper) Sum(data []byte) []byte {
	s.h.Reset()
	_, _ = s.h.Write(data) // hash.Hash.Write never returns an error
	s.buf = s.h.Sum(s.buf[:0])
	return s.buf
}
