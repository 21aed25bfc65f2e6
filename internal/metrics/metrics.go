// Package metrics aggregates solver statistics for cross-algorithm
// comparison. It consumes Statistics snapshots only; no solving state.
package metrics

import (
	"time"

	"svw.info/sudoku-solvers/internal/solver"
)

// Collector gathers one Statistics snapshot per algorithm, keeping first
// collection order for presentation.
type Collector struct {
	order []string
	stats map[string]solver.Statistics
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{stats: make(map[string]solver.Statistics)}
}

// Collect records the current statistics of s, replacing any earlier
// snapshot for the same algorithm.
func (m *Collector) Collect(s solver.Solver) {
	m.Record(s.Statistics())
}

// Record stores a statistics snapshot directly.
func (m *Collector) Record(st solver.Statistics) {
	if _, seen := m.stats[st.Algorithm]; !seen {
		m.order = append(m.order, st.Algorithm)
	}
	m.stats[st.Algorithm] = st
}

// Reset clears all collected statistics.
func (m *Collector) Reset() {
	m.order = nil
	m.stats = make(map[string]solver.Statistics)
}

// Table returns the collected snapshots in collection order.
func (m *Collector) Table() []solver.Statistics {
	out := make([]solver.Statistics, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.stats[name])
	}
	return out
}

// Comparison summarizes a multi-algorithm run.
type Comparison struct {
	Fastest     string // fastest algorithm that solved the puzzle; "" if none
	FastestTime time.Duration
	Solved      int // how many algorithms solved it
}

// Compare picks the fastest solving algorithm among the collected runs.
// Algorithms that failed (e.g. naked singles getting stuck) never win.
func (m *Collector) Compare() Comparison {
	var cmp Comparison
	for _, name := range m.order {
		st := m.stats[name]
		if !st.Solved {
			continue
		}
		cmp.Solved++
		if cmp.Fastest == "" || st.ExecutionTime < cmp.FastestTime {
			cmp.Fastest = name
			cmp.FastestTime = st.ExecutionTime
		}
	}
	return cmp
}
