package metrics

import (
	"fanorona/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	AlphaBeta bool
	Heuristic game.Heuristic
	Depth     int
	Duration  time.Duration
	Frontier  int // Root branching factor
	Nodes     int // Expanded internal nodes
	Leaves    int // Heuristic evaluations
	Cutoffs   int
}

type MoveMetric struct {
	Step     int
	Player   game.Color
	Move     game.Move
	Captured int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Color
	Winner         string // "G", "R" or "" for a draw
	Reason         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	GreenTokens    int
	RedTokens      int
}

type Collector interface {
	Start(alphaBeta bool, heuristic game.Heuristic, depth int)
	SetFrontier(size int)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	alphaBeta bool
	heuristic game.Heuristic
	depth     int
	startTime time.Time
	frontier  atomic.Int32
	nodes     atomic.Int32
	leaves    atomic.Int32
	cutoffs   atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(alphaBeta bool, heuristic game.Heuristic, depth int) {
	m.startTime = time.Now()
	m.alphaBeta = alphaBeta
	m.heuristic = heuristic
	m.depth = depth
	m.frontier.Store(0)
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) SetFrontier(size int) {
	m.frontier.Store(int32(size))
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		AlphaBeta: m.alphaBeta,
		Heuristic: m.heuristic,
		Depth:     m.depth,
		Duration:  time.Since(m.startTime),
		Frontier:  int(m.frontier.Load()),
		Nodes:     int(m.nodes.Load()),
		Leaves:    int(m.leaves.Load()),
		Cutoffs:   int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(alphaBeta bool, heuristic game.Heuristic, depth int) {}
func (m *dummyCollector) SetFrontier(size int)                                       {}
func (m *dummyCollector) AddNode()                                                   {}
func (m *dummyCollector) AddLeaf()                                                   {}
func (m *dummyCollector) AddCutoff()                                                 {}
func (m *dummyCollector) Complete() SearchMetric                                     { return SearchMetric{} }
