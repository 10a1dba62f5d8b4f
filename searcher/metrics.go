package searcher

import (
	"sync/atomic"
	"time"
)

type MoveMetrics struct {
	StartTime   time.Time
	Duration    time.Duration
	Nodes       int64 // positions visited below the root
	Leaves      int64 // positions scored by the evaluator
	Prunes      int64 // alpha-beta cutoffs
	Depth       int   // depth of the accepted scan
	Interrupted bool  // a deeper scan was abandoned at the deadline
}

type MetricsCollector interface {
	Start()
	AddNode()
	AddLeaf()
	AddPrune()
	CompleteDepth(depth int)
	Interrupt()
	Complete() MoveMetrics
}

type metricsCollector struct {
	startTime   time.Time
	nodes       atomic.Int64
	leaves      atomic.Int64
	prunes      atomic.Int64
	depth       atomic.Int64
	interrupted atomic.Bool
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.prunes.Store(0)
	m.depth.Store(0)
	m.interrupted.Store(false)
}

func (m *metricsCollector) AddNode() {
	m.nodes.Add(1)
}

func (m *metricsCollector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *metricsCollector) AddPrune() {
	m.prunes.Add(1)
}

func (m *metricsCollector) CompleteDepth(depth int) {
	m.depth.Store(int64(depth))
}

func (m *metricsCollector) Interrupt() {
	m.interrupted.Store(true)
}

func (m *metricsCollector) Complete() MoveMetrics {
	return MoveMetrics{
		StartTime:   m.startTime,
		Duration:    time.Since(m.startTime),
		Nodes:       m.nodes.Load(),
		Leaves:      m.leaves.Load(),
		Prunes:      m.prunes.Load(),
		Depth:       int(m.depth.Load()),
		Interrupted: m.interrupted.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                {}
func (m *noMetricsCollector) AddNode()              {}
func (m *noMetricsCollector) AddLeaf()              {}
func (m *noMetricsCollector) AddPrune()             {}
func (m *noMetricsCollector) CompleteDepth(int)     {}
func (m *noMetricsCollector) Interrupt()            {}
func (m *noMetricsCollector) Complete() MoveMetrics { return MoveMetrics{} }
