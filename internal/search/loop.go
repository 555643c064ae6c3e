package search

import (
	"context"
	"fmt"
	gohash "hash"
	"time"

	"github.com/rickgorman/hashsearch/internal/counter"
	"github.com/rickgorman/hashsearch/internal/strategy"
)

// Loop is one search session.
type Loop struct {
	cfg       Config
	stepper   *Stepper
	traversal strategy.Traversal

	recorder Recorder
	reporter Reporter
	controls Controls
	metrics  Metrics
	ticks    <-chan time.Time

	sessionID string
	inputs    uint64
	started   time.Time
}

// New creates a search over h. The seed and final value in cfg are aligned
// to h's digest size.
func New(cfg Config, h gohash.Hash, opts ...Option) (*Loop, error) {
	cfg, err := cfg.normalize(h.Size())
	if err != nil {
		return nil, err
	}

	traversal, err := strategy.New(cfg.Mode, cfg.Seed, cfg.Final)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	l := &Loop{
		cfg:       cfg,
		stepper:   NewStepper(h),
		traversal: traversal,
		reporter:  nopReporter{},
		metrics:   nopMetrics{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Run searches until a termination condition is met. The returned Result
// is valid even when err is not nil.
func (l *Loop) Run(ctx context.Context) (Result, error) {
	l.started = time.Now()

	if l.recorder != nil {
		id, err := l.recorder.SessionStart(ctx, l.cfg.Algorithm, l.cfg.HostID,
			l.cfg.Mode.String(), counter.Clone(l.cfg.Seed))
		if err != nil {
			return Result{}, fmt.Errorf("starting session: %w", err)
		}
		l.sessionID = id
	}

	ticks, stop := l.checkpointTicks()
	defer stop()

	res := l.run(ctx, ticks)
	res.SessionID = l.sessionID
	res.Elapsed = time.Since(l.started)
	l.reporter.Terminated(res)

	if l.recorder == nil {
		return res, nil
	}
	return res, l.endSession(ctx, res)
}

func (l *Loop) run(ctx context.Context, ticks <-chan time.Time) Result {
	done := ctx.Done()
	candidate := counter.Clone(l.cfg.Seed)
	next := make([]byte, len(candidate))
	chainMode := l.cfg.Mode.Kind == strategy.ChainLength

	for {
		select {
		case <-done:
			return l.result(ExternalCancellation, candidate)
		default:
		}

		digest := l.stepper.Sum(candidate)
		l.inputs++
		l.metrics.Iteration()

		ev := l.traversal.Observe(candidate, digest)
		if !chainMode {
			l.score(ctx, candidate, digest)
		}
		l.event(ctx, ev)
		l.metrics.ChainLength(l.traversal.ChainLength())

		if reason, quit := l.poll(ctx, candidate); quit {
			return l.result(reason, candidate)
		}

		select {
		case <-ticks:
			l.checkpoint(ctx, candidate)
		default:
		}

		if s := l.traversal.Advance(next, candidate, digest); s != strategy.None {
			return l.result(reasonFor(s), candidate)
		}
		candidate, next = next, candidate
	}
}

// score reports candidate when it is similar enough to its digest or is a
// fix point.
func (l *Loop) score(ctx context.Context, candidate, digest []byte) {
	score := l.cfg.Similarity.MustScore(candidate, digest)
	fix := counter.Equal(candidate, digest)
	if score < l.cfg.Threshold && !fix {
		return
	}

	hit := SimilarityHit{
		Algorithm: l.cfg.Algorithm,
		Input:     counter.Clone(candidate),
		Digest:    counter.Clone(digest),
		Score:     score,
		Kind:      l.cfg.Similarity,
		FixPoint:  fix,
	}
	l.reporter.Hit(hit)
	l.metrics.Hit(fix)

	if l.recorder != nil {
		if err := l.recorder.RecordSimilarityHit(ctx, hit); err != nil {
			l.reporter.Warn(fmt.Sprintf("recording hit: %v", err))
		}
	}
}

func (l *Loop) event(ctx context.Context, ev strategy.Event) {
	c := ChainClosure{Start: ev.Start, Length: ev.Length}

	switch ev.Kind {
	case strategy.ChainClosed:
		l.reporter.ChainClosed(c)
		l.metrics.ChainClosed(c.Length)
		if l.recorder != nil {
			if err := l.recorder.RecordChainClosure(ctx, l.cfg.Algorithm, counter.Clone(c.Start), c.Length); err != nil {
				l.reporter.Warn(fmt.Sprintf("recording chain: %v", err))
			}
		}
	case strategy.ChainAbandoned:
		l.metrics.ChainAbandoned()
		if l.cfg.Verbose {
			l.reporter.ChainAbandoned(c)
		}
	case strategy.Revisit:
		l.reporter.CycleDetected(c)
	}
}

// poll handles at most one pending control key.
func (l *Loop) poll(ctx context.Context, candidate []byte) (Reason, bool) {
	if l.controls == nil {
		return 0, false
	}
	key, ok := l.controls.Poll()
	if !ok {
		return 0, false
	}

	switch key {
	case KeyStatus:
		l.reporter.Status(l.snapshot(candidate))
	case KeyPause:
		l.reporter.Paused()
		if err := l.controls.Wait(ctx); err != nil {
			return ExternalCancellation, true
		}
		l.reporter.Resumed()
	case KeyQuit:
		return UserQuit, true
	}
	return 0, false
}

func (l *Loop) checkpoint(ctx context.Context, candidate []byte) {
	if l.recorder == nil {
		return
	}
	current := counter.Clone(l.traversal.Position(candidate))
	if err := l.recorder.SessionCheckpoint(ctx, l.sessionID, l.inputs, current); err != nil {
		l.metrics.CheckpointFailed()
		l.reporter.Warn(fmt.Sprintf("checkpoint failed: %v", err))
	}
}

func (l *Loop) checkpointTicks() (<-chan time.Time, func()) {
	if l.ticks != nil {
		return l.ticks, func() {}
	}
	if l.recorder == nil || l.cfg.CheckpointInterval <= 0 {
		return nil, func() {}
	}
	t := time.NewTicker(l.cfg.CheckpointInterval)
	return t.C, t.Stop
}

// endSession reports the final counters. After a cancellation the update is
// best effort: it runs detached from ctx and failures are only logged.
func (l *Loop) endSession(ctx context.Context, res Result) error {
	cancelled := res.Reason == ExternalCancellation
	if cancelled {
		ctx = context.WithoutCancel(ctx)
	}

	err := l.recorder.SessionEnd(ctx, l.sessionID, res.InputsProcessed, counter.Clone(res.Last))
	if err == nil {
		return nil
	}
	if cancelled {
		l.reporter.Warn(fmt.Sprintf("ending session %s: %v", l.sessionID, err))
		return nil
	}
	return fmt.Errorf("ending session %s: %w", l.sessionID, err)
}

func (l *Loop) snapshot(candidate []byte) Snapshot {
	return Snapshot{
		Algorithm:   l.cfg.Algorithm,
		Mode:        l.cfg.Mode.String(),
		Inputs:      l.inputs,
		Current:     counter.Clone(l.traversal.Position(candidate)),
		ChainLength: l.traversal.ChainLength(),
		Elapsed:     time.Since(l.started),
	}
}

func (l *Loop) result(reason Reason, candidate []byte) Result {
	return Result{
		Reason:          reason,
		InputsProcessed: l.inputs,
		Last:            counter.Clone(l.traversal.Position(candidate)),
	}
}

// Config returns the normalized configuration.
func (l *Loop) Config() Config {
	return l.cfg
}
