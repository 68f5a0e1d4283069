package engine

import (
	"awale/experiments/metrics"
	"awale/game"
)

type Engine interface {
	// Run plays a game till it is over or a max number of moves is reached
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

var _ Engine = (*LocalEngine)(nil)
