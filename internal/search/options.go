package search

import "time"

// Option configures the collaborators of a Loop.
type Option func(*Loop)

// WithRecorder enables persistence.
func WithRecorder(r Recorder) Option {
	return func(l *Loop) { l.recorder = r }
}

// WithReporter sets where hits and status are reported.
func WithReporter(r Reporter) Option {
	return func(l *Loop) { l.reporter = r }
}

// WithControls enables interactive keys.
func WithControls(c Controls) Option {
	return func(l *Loop) { l.controls = c }
}

// WithMetrics sets the metrics sink.
func WithMetrics(m Metrics) Option {
	return func(l *Loop) { l.metrics = m }
}

// WithCheckpoints replaces the checkpoint ticker with ticks.
func WithCheckpoints(ticks <-chan time.Time) Option {
	return func(l *Loop) { l.ticks = ticks }
}
