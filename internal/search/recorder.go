package search

import (
	"context"

	"github.com/rickgorman/hashsearch/internal/similarity"
)

// SimilarityHit is a candidate whose digest scored at or above the threshold,
// or hashed to itself.
type SimilarityHit struct {
	Algorithm string
	Input     []byte
	Digest    []byte
	Score     int
	Kind      similarity.Kind
	FixPoint  bool
}

// ChainClosure is a chain of Length hash applications starting at Start.
type ChainClosure struct {
	Start  []byte
	Length uint64
}

// Recorder persists search sessions and their findings. Failures should wrap
// ErrStorageUnavailable. Only SessionStart and SessionEnd failures are
// reported by Run; the rest are logged and the search continues.
type Recorder interface {
	SessionStart(ctx context.Context, algorithm, hostID, mode string, seed []byte) (string, error)
	SessionCheckpoint(ctx context.Context, sessionID string, inputs uint64, current []byte) error
	SessionEnd(ctx context.Context, sessionID string, inputs uint64, last []byte) error
	RecordSimilarityHit(ctx context.Context, hit SimilarityHit) error
	RecordChainClosure(ctx context.Context, algorithm string, start []byte, length uint64) error
}
