package metrics

import (
	"sync/atomic"
	"time"

	"awale/game"
)

type SearchMetric struct {
	Depth      int
	Duration   time.Duration
	Nodes      int // Positions visited by the search
	Candidates int // Root moves left after the starvation filter
	Score      int // Score of the chosen move, positive favors player 0
}

type MoveMetric struct {
	Step       int
	Player     game.Player
	Cell       int
	Captured   int
	Evaluation float64 // Position value for the mover after the move
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Player // game.NoPlayer on a draw or unfinished game
	Stores         [2]int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(depth int)
	AddNode()
	SetResult(candidates, score int)
	Complete() SearchMetric
}

type collector struct {
	depth      int
	startTime  time.Time
	nodes      atomic.Int64
	candidates int
	score      int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.nodes.Store(0)
	m.candidates = 0
	m.score = 0
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) SetResult(candidates, score int) {
	m.candidates = candidates
	m.score = score
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:      m.depth,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		Candidates: m.candidates,
		Score:      m.score,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)                 {}
func (m *dummyCollector) AddNode()                        {}
func (m *dummyCollector) SetResult(candidates, score int) {}
func (m *dummyCollector) Complete() SearchMetric          { return SearchMetric{} }
