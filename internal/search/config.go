package search

import (
	"fmt"
	"time"

	"github.com/rickgorman/hashsearch/internal/counter"
	"github.com/rickgorman/hashsearch/internal/similarity"
	"github.com/rickgorman/hashsearch/internal/strategy"
)

// Config holds the settings of one search session. It is copied by New and
// never changes while the loop runs.
type Config struct {
	// Algorithm is the display name of the hash, passed to the Recorder.
	Algorithm string
	Mode      strategy.Mode

	// Seed is the first candidate. It is right-aligned into the digest width.
	Seed []byte
	// Final optionally ends the search once the traversal reaches it.
	Final []byte

	// Threshold is the minimum similarity reported as a hit.
	Threshold  int
	Similarity similarity.Kind

	// Verbose also reports abandoned chains.
	Verbose bool
	HostID  string

	// CheckpointInterval is how often progress is sent to the Recorder.
	// Zero disables checkpoints.
	CheckpointInterval time.Duration
}

// normalize aligns the seed and final value to width and validates the rest.
func (c Config) normalize(width int) (Config, error) {
	if width <= 0 {
		return c, fmt.Errorf("%w: digest size %d", ErrConfiguration, width)
	}

	seed, err := counter.Align(c.Seed, width)
	if err != nil {
		return c, fmt.Errorf("%w: seed: %w", ErrConfiguration, err)
	}
	c.Seed = seed

	if c.Final != nil {
		final, err := counter.Align(c.Final, width)
		if err != nil {
			return c, fmt.Errorf("%w: final value: %w", ErrConfiguration, err)
		}
		c.Final = final
	}

	if c.Threshold < 0 || c.Threshold > c.Similarity.Max(width) {
		return c, fmt.Errorf("%w: threshold %d outside 0..%d for %s similarity",
			ErrConfiguration, c.Threshold, c.Similarity.Max(width), c.Similarity)
	}
	if c.CheckpointInterval < 0 {
		return c, fmt.Errorf("%w: negative checkpoint interval", ErrConfiguration)
	}
	return c, nil
}
