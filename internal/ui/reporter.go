package ui

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/rickgorman/hashsearch/internal/search"
)

var _ search.Reporter = (*SearchReporter)(nil)

// SearchReporter prints search events.
type SearchReporter struct {
	p *Printer

	// abandonments can fire on every few iterations
	limiter    *rate.Limiter
	suppressed int
}

// NewSearchReporter returns a reporter printing through p.
func NewSearchReporter(p *Printer) *SearchReporter {
	return &SearchReporter{
		p:       p,
		limiter: rate.NewLimiter(rate.Every(time.Second), 5),
	}
}

func (r *SearchReporter) Hit(hit search.SimilarityHit) {
	if hit.FixPoint {
		r.p.Success("Fix Point Found!!! Input %s.", r.p.Hex(hit.Input))
		return
	}
	r.p.Info("Input %s Has Similarity Index %d.", r.p.Hex(hit.Input), hit.Score)
	r.p.Debug("(Hash %s)", r.p.Hex(hit.Digest))
}

func (r *SearchReporter) ChainClosed(c search.ChainClosure) {
	r.p.Info("Chain Start %s Has Chain Length %d.", r.p.Hex(c.Start), c.Length)
}

func (r *SearchReporter) ChainAbandoned(c search.ChainClosure) {
	if !r.limiter.Allow() {
		r.suppressed++
		return
	}
	if r.suppressed > 0 {
		r.p.Debug("Chain Start %s abandoned after %d steps (%d similar messages suppressed).",
			r.p.Hex(c.Start), c.Length, r.suppressed)
		r.suppressed = 0
		return
	}
	r.p.Debug("Chain Start %s abandoned after %d steps.", r.p.Hex(c.Start), c.Length)
}

func (r *SearchReporter) CycleDetected(c search.ChainClosure) {
	r.p.Warn("Revisited %s after %d distinct values.", r.p.Hex(c.Start), c.Length)
}

func (r *SearchReporter) Status(s search.Snapshot) {
	r.p.Info("Current Value %s (%d inputs, %s).", r.p.Hex(s.Current), s.Inputs, s.Elapsed.Round(time.Second))
	if s.ChainLength > 0 {
		r.p.DimMsg("Chain length so far: %d", s.ChainLength)
	}
}

func (r *SearchReporter) Paused() {
	r.p.Warn("Paused. Press any key to continue...")
}

func (r *SearchReporter) Resumed() {
	r.p.DimMsg("Resumed.")
}

func (r *SearchReporter) Terminated(res search.Result) {
	last := r.p.Hex(res.Last)

	switch res.Reason {
	case search.DomainExhausted:
		r.p.Success("Domain exhausted after %d inputs.", res.InputsProcessed)
	case search.FinalValueReached:
		r.p.Success("Final value reached after %d inputs.", res.InputsProcessed)
	case search.FixPointReached:
		r.p.Success("Chase stopped at fix point %s after %d inputs.", last, res.InputsProcessed)
	case search.CycleDetected:
		r.p.Success("Chase returned to a visited value after %d inputs.", res.InputsProcessed)
	case search.UserQuit:
		r.p.Info("Quit at %s after %d inputs.", last, res.InputsProcessed)
	case search.ExternalCancellation:
		r.p.Warn("Interrupted at %s after %d inputs.", last, res.InputsProcessed)
	}
	if res.SessionID != "" {
		r.p.DimMsg("Session %s", res.SessionID)
	}
}

func (r *SearchReporter) Warn(msg string) {
	r.p.Warn("%s", msg)
}
