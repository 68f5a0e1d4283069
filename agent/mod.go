package agent

import (
	"awale/experiments/metrics"
	"awale/game"
	"awale/searcher"

	"golang.org/x/exp/rand"
)

type Agent interface {
	// FindMove returns the cell to play and performance metrics (if collected) from the search
	FindMove(state game.State) (int, metrics.SearchMetric)
}

type advisorAgent struct {
	advisor *searcher.Advisor
}

// NewAdvisorAgent returns an agent that plays the minimax suggestion.
func NewAdvisorAgent(advisor *searcher.Advisor) Agent {
	return advisorAgent{advisor: advisor}
}

func (a advisorAgent) FindMove(state game.State) (int, metrics.SearchMetric) {
	gs, ok := state.(*game.GameState)
	if !ok {
		panic("unexpected state type")
	}
	return a.advisor.Suggest(gs.Board, gs.Current)
}

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that picks uniformly among the legal moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state game.State) (int, metrics.SearchMetric) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove, metrics.SearchMetric{}
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{Candidates: len(moves)}
}
