package searcher

import (
	"awale/experiments/metrics"
	"awale/game"
	"awale/meta"

	"github.com/rs/zerolog/log"
)

type Option func(a *Advisor)

// Advisor runs the move searches with a fixed depth and optional metrics.
type Advisor struct {
	depth   int
	metrics metrics.Collector
}

func WithDepth(depth int) Option {
	return func(a *Advisor) {
		if depth >= 0 {
			a.depth = depth
		}
	}
}

func WithMetrics() Option {
	return func(a *Advisor) {
		a.metrics = metrics.NewCollector()
	}
}

func NewAdvisor(options ...Option) *Advisor {
	a := &Advisor{ // Default values
		depth:   meta.DefaultDepth,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *Advisor) Depth() int {
	return a.depth
}

// Suggest returns the best cell for player, or game.NoMove, along with the
// search metrics if collected.
func (a *Advisor) Suggest(board game.Board, player game.Player) (int, metrics.SearchMetric) {
	a.metrics.Start(a.depth)
	ranked := rank(board, player, a.depth, a.metrics)
	best, ok := pick(ranked, player)
	if !ok {
		a.metrics.SetResult(0, 0)
		log.Debug().Msgf("no move for %s that does not starve the opponent", player)
		return game.NoMove, a.metrics.Complete()
	}
	a.metrics.SetResult(len(ranked), best.Score)
	log.Debug().Msgf("suggesting cell %d for %s with score %d among %d candidates", best.Cell, player, best.Score, len(ranked))
	return best.Cell, a.metrics.Complete()
}

// Enumerate lists the lines of play from the position, see Enumerate.
func (a *Advisor) Enumerate(board game.Board, player game.Player) ([]Sequence, metrics.SearchMetric) {
	a.metrics.Start(a.depth)
	sequences := enumerate(board, player, a.depth, []int{}, a.metrics)
	if best, ok := BestSequence(sequences, player); ok {
		a.metrics.SetResult(len(sequences), best.Score)
	}
	return sequences, a.metrics.Complete()
}
