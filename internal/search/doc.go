// Package search runs a hash-domain search.
//
// A search treats a hash function as a map from its digest space onto
// itself. Candidates are byte slices exactly one digest wide. Each
// iteration hashes the current candidate, scores the digest against it,
// and asks the session's traversal for the next candidate:
//
//	candidate ──hash──▶ digest ──score──▶ report / record
//	    ▲                  │
//	    └──── traversal ◀──┘
//
// Termination reasons:
//   - DomainExhausted: the counter wrapped past the largest value
//   - FinalValueReached: the next candidate equals the configured final value
//   - FixPointReached: a chase hit a value that hashes to itself
//   - CycleDetected: a chase came back to a value it already visited
//   - UserQuit: the quit key was pressed
//   - ExternalCancellation: the context was cancelled
//
// All of them are graceful. Run only returns an error when the Recorder
// cannot start or finish the session.
//
// The loop runs on one goroutine and owns all session state. Control keys
// and checkpoint ticks arrive on channels and are polled without blocking
// once per iteration.
//
// Example usage:
//
//	alg, _ := hash.Lookup("md5")
//	loop, err := search.New(search.Config{
//		Algorithm: alg.Name,
//		Mode:      strategy.Mode{Kind: strategy.Chase},
//		Seed:      []byte{0x00},
//		Threshold: 100,
//	}, alg.New(false), search.WithReporter(reporter))
//	res, err := loop.Run(ctx)
package search
