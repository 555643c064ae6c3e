package strategy

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// MaxTrackedWidth is the widest candidate, in bytes, whose chase trajectory
// is recorded. Wider domains cannot be revisited in any practical run.
const MaxTrackedWidth = 4

// CycleTracker remembers every value visited by a chase.
type CycleTracker struct {
	visited *roaring.Bitmap
}

// NewCycleTracker returns a tracker for values of width bytes, or nil when
// the width is too large to track.
func NewCycleTracker(width int) *CycleTracker {
	if width <= 0 || width > MaxTrackedWidth {
		return nil
	}
	return &CycleTracker{visited: roaring.New()}
}

// Visit records v and reports whether it was new.
func (c *CycleTracker) Visit(v []byte) bool {
	return c.visited.CheckedAdd(key(v))
}

// Seen reports whether v was visited.
func (c *CycleTracker) Seen(v []byte) bool {
	return c.visited.Contains(key(v))
}

// Len returns the number of distinct values visited.
func (c *CycleTracker) Len() uint64 {
	return c.visited.GetCardinality()
}

func key(v []byte) uint32 {
	var k uint32
	for _, b := range v {
		k = k<<8 | uint32(b)
	}
	return k
}
