package metrics

import (
	"reversi/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth      int
	Goroutines int
	Pruning    bool
	Score      float64
	Duration   time.Duration
	Nodes      int
	Leaves     int
}

type MoveMetric struct {
	Step   int
	Player game.Color
	Move   game.Move
	SearchMetric
}

type GameMetric struct {
	ID         string // uuid
	Black      int    // AgentConfig.ID
	White      int    // AgentConfig.ID
	Winner     game.Color
	BlackDiscs int
	WhiteDiscs int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	Passes     int
}

type Collector interface {
	Start(depth, goroutines int, pruning bool)
	AddNode()
	AddLeaf()
	Complete() SearchMetric
}

type collector struct {
	depth      int
	goroutines int
	pruning    bool
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth, goroutines int, pruning bool) {
	m.startTime = time.Now()
	m.depth = depth
	m.goroutines = goroutines
	m.pruning = pruning
	m.nodes.Store(0)
	m.leaves.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:      m.depth,
		Goroutines: m.goroutines,
		Pruning:    m.pruning,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		Leaves:     int(m.leaves.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth, goroutines int, pruning bool) {}
func (m *dummyCollector) AddNode()                                  {}
func (m *dummyCollector) AddLeaf()                                  {}
func (m *dummyCollector) Complete() SearchMetric                    { return SearchMetric{} }
