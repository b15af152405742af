package dispatcher

import (
	"sort"
	"sync"
	"time"
)

// Metrics counts keys and action runs. It is only allocated when
// Config.EnableMetrics is set.
type Metrics struct {
	mu      sync.Mutex
	summary Summary
	actions map[string]*ActionMetrics
}

// Summary is a copy of the dispatcher-wide counters.
type Summary struct {
	Keys       uint64
	Dispatches uint64
	Errors     uint64
	Panics     uint64

	// Busy is the total time spent inside actions.
	Busy time.Duration
}

// ActionMetrics holds the counters for one action name.
type ActionMetrics struct {
	Name   string
	Runs   uint64
	Errors uint64
	Max    time.Duration
}

// NewMetrics creates an empty metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{actions: make(map[string]*ActionMetrics)}
}

// RecordKey counts one key event handed to the dispatcher.
func (m *Metrics) RecordKey() {
	m.mu.Lock()
	m.summary.Keys++
	m.mu.Unlock()
}

// RecordDispatch counts one run of actionName.
func (m *Metrics) RecordDispatch(actionName string, took time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	am := m.actions[actionName]
	if am == nil {
		am = &ActionMetrics{Name: actionName}
		m.actions[actionName] = am
	}

	m.summary.Dispatches++
	m.summary.Busy += took
	am.Runs++
	am.Max = max(am.Max, took)
	if err != nil {
		m.summary.Errors++
		am.Errors++
	}
}

// RecordPanic counts a recovered panic.
func (m *Metrics) RecordPanic(string) {
	m.mu.Lock()
	m.summary.Panics++
	m.mu.Unlock()
}

// Summary returns the current counters.
func (m *Metrics) Summary() Summary {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.summary
}

// TopActions returns up to n actions, most run first. Ties are broken
// by name.
func (m *Metrics) TopActions(n int) []ActionMetrics {
	m.mu.Lock()
	out := make([]ActionMetrics, 0, len(m.actions))
	for _, am := range m.actions {
		out = append(out, *am)
	}
	m.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Runs != out[j].Runs {
			return out[i].Runs > out[j].Runs
		}
		return out[i].Name < out[j].Name
	})
	return out[:min(n, len(out))]
}
