package engine

import (
	"time"

	"awale/agent"
	"awale/experiments/metrics"
	"awale/game"
	"awale/meta"
	"awale/utils"

	"github.com/rs/zerolog/log"
)

type LocalEngine struct {
	State    *game.GameState
	Agents   [2]agent.Agent // Indexed by player
	Evaluate game.Evaluate
	MaxTurns int
}

func NewLocalEngine(board game.Board, starting game.Player, agents [2]agent.Agent) *LocalEngine {
	for _, a := range agents {
		if a == nil {
			panic("need an agent for each player")
		}
	}
	return &LocalEngine{
		State:    game.NewGameState(board, starting),
		Agents:   agents,
		Evaluate: game.EvaluateCaptures,
		MaxTurns: meta.MaxTurns,
	}
}

// Run executes the game loop until the game is over or MaxTurns moves are played.
func (e *LocalEngine) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Current,
		StartTime:      time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}

	log.Info().Msgf("%s is starting", e.State.Current)

	for !e.State.Over() && e.State.Turns < e.MaxTurns {
		player := e.State.Current
		cell, searchMetric := e.Agents[player].FindMove(e.State)
		if utils.FindIndex(e.State.LegalMoves(), cell) < 0 {
			log.Warn().Msgf("%s returned illegal cell %d, ending game", player, cell)
			break
		}

		// Stores also grow at close-out, so captures come from the board
		_, captured := e.State.Board.Play(player, cell)
		next := e.State.Play(cell).(*game.GameState)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         next.Turns,
			Player:       player,
			Cell:         cell,
			Captured:     captured,
			Evaluation:   -e.Evaluate(next),
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("turn %d: %s played cell %d capturing %d\n%s", next.Turns, player, cell, captured, next.Board)

		e.State = next
	}

	if e.State.Over() {
		log.Info().Msgf("game over after %d moves, stores %v, winner %s", e.State.Turns, e.State.Stores, e.State.Winner())
	} else {
		log.Info().Msgf("stopped after %d moves (no winner yet)", e.State.Turns)
	}

	gameMetric.Winner = e.State.Winner()
	gameMetric.Stores = e.State.Stores
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.State.Turns
	return e.State.Winner(), gameMetric, moveMetrics
}
