package search

// Metrics receives counters from the loop.
type Metrics interface {
	Iteration()
	Hit(fixPoint bool)
	ChainClosed(length uint64)
	ChainAbandoned()
	CheckpointFailed()
	ChainLength(n uint64)
}

type nopMetrics struct{}

func (nopMetrics) Iteration()         {}
func (nopMetrics) Hit(bool)           {}
func (nopMetrics) ChainClosed(uint64) {}
func (nopMetrics) ChainAbandoned()    {}
func (nopMetrics) CheckpointFailed()  {}
func (nopMetrics) ChainLength(uint64) {}
