package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Kind      Kind
	Depth     int
	StartTime time.Time
	Duration  time.Duration
	Nodes     int64 // Positions visited
	Terminals int64 // Full or goal positions
	Cutoffs   int64 // Positions scored by heuristic at the depth limit
	Pruned    int64 // Siblings skipped by alpha-beta
}

type Collector interface {
	Start(kind Kind, depth int)
	AddNode()
	AddTerminal()
	AddCutoff()
	AddPruned(n int)
	Complete() SearchMetric
}

type collector struct {
	kind      Kind
	depth     int
	startTime time.Time
	nodes     atomic.Int64
	terminals atomic.Int64
	cutoffs   atomic.Int64
	pruned    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(kind Kind, depth int) {
	m.kind = kind
	m.depth = depth
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.terminals.Store(0)
	m.cutoffs.Store(0)
	m.pruned.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) AddPruned(n int) {
	m.pruned.Add(int64(n))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Kind:      m.kind,
		Depth:     m.depth,
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Nodes:     m.nodes.Load(),
		Terminals: m.terminals.Load(),
		Cutoffs:   m.cutoffs.Load(),
		Pruned:    m.pruned.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(kind Kind, depth int) {}
func (m *dummyCollector) AddNode()                   {}
func (m *dummyCollector) AddTerminal()               {}
func (m *dummyCollector) AddCutoff()                 {}
func (m *dummyCollector) AddPruned(n int)            {}
func (m *dummyCollector) Complete() SearchMetric     { return SearchMetric{} }
