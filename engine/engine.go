package engine

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
)

type Engine interface {
	// Run plays a game to the end or until the turn limit and returns the
	// winner, or game.None for a draw or an unfinished game.
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
