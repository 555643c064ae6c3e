// Package metrics exports search progress to Prometheus.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rickgorman/hashsearch/internal/search"
)

const namespace = "hashsearch"

var _ search.Metrics = (*Prometheus)(nil)

// Prometheus implements search.Metrics with Prometheus collectors.
type Prometheus struct {
	iterations         prometheus.Counter
	hits               prometheus.Counter
	fixPoints          prometheus.Counter
	chainsClosed       prometheus.Counter
	chainsAbandoned    prometheus.Counter
	checkpointFailures prometheus.Counter
	chainLength        prometheus.Gauge
	longestChain       prometheus.Gauge

	longest uint64
}

// NewPrometheus creates the collectors, labelled with the algorithm and
// mode of the session, and registers them with registerer.
func NewPrometheus(registerer prometheus.Registerer, algorithm, mode string) (metrics *Prometheus, err error) {
	labels := prometheus.Labels{"algorithm": algorithm, "mode": mode}
	metrics = new(Prometheus)
	collectorsToRegister := make(map[string]prometheus.Collector)

	counter := func(name, help string) prometheus.Counter {
		c := prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		})
		collectorsToRegister[name] = c
		return c
	}
	gauge := func(name, help string) prometheus.Gauge {
		g := prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		})
		collectorsToRegister[name] = g
		return g
	}

	metrics.iterations = counter("inputs_processed_total", "candidates hashed")
	metrics.hits = counter("similarity_hits_total", "candidates at or above the similarity threshold")
	metrics.fixPoints = counter("fix_points_total", "candidates that hash to themselves")
	metrics.chainsClosed = counter("chains_closed_total", "chains that returned to their start")
	metrics.chainsAbandoned = counter("chains_abandoned_total", "chains abandoned past the maximum length")
	metrics.checkpointFailures = counter("checkpoint_failures_total", "checkpoints the recorder rejected")
	metrics.chainLength = gauge("chain_length", "length of the chain being walked")
	metrics.longestChain = gauge("longest_chain_length", "longest closed chain so far")

	for collectorName, collectorToRegister := range collectorsToRegister {
		err = registerer.Register(collectorToRegister)
		if err != nil && !errors.As(err, &prometheus.AlreadyRegisteredError{}) {
			return nil, fmt.Errorf("cannot register %s: %w", collectorName, err)
		}
	}

	return metrics, nil
}

func (m *Prometheus) Iteration() {
	m.iterations.Inc()
}

func (m *Prometheus) Hit(fixPoint bool) {
	m.hits.Inc()
	if fixPoint {
		m.fixPoints.Inc()
	}
}

func (m *Prometheus) ChainClosed(length uint64) {
	m.chainsClosed.Inc()
	if length > m.longest {
		m.longest = length
		m.longestChain.Set(float64(length))
	}
}

func (m *Prometheus) ChainAbandoned() {
	m.chainsAbandoned.Inc()
}

func (m *Prometheus) CheckpointFailed() {
	m.checkpointFailures.Inc()
}

func (m *Prometheus) ChainLength(n uint64) {
	m.chainLength.Set(float64(n))
}
