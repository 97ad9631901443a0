package engine

import (
	"time"

	"connectfour/agent"
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/meta"
	"connectfour/searcher"

	"github.com/rs/zerolog/log"
)

// MoveEvent is passed to observers after every move.
type MoveEvent struct {
	Step   int
	Player game.Player
	Column int
	Board  *game.Board
}

type Option func(e *Local)

func WithMaxTurns(turns int) Option {
	return func(e *Local) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithObserver calls observe after each move, e.g. to print the board.
func WithObserver(observe func(MoveEvent)) Option {
	return func(e *Local) {
		e.observe = observe
	}
}

// Local runs a game between two in-process agents.
type Local struct {
	Board    *game.Board
	agents   [2]agent.Agent
	maxTurns int
	observe  func(MoveEvent)
}

// metered is implemented by agents that report search metrics.
type metered interface {
	Metrics() searcher.SearchMetric
}

func NewLocal(first, second agent.Agent, board *game.Board, options ...Option) *Local {
	if first == nil || second == nil {
		panic("need an agent for both players")
	}
	if board == nil {
		board = game.NewBoard(meta.Width, meta.Height)
	}
	e := &Local{
		Board:    board,
		agents:   [2]agent.Agent{first, second},
		maxTurns: meta.MaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Local) agentFor(player game.Player) agent.Agent {
	if player == game.First {
		return e.agents[0]
	}
	return e.agents[1]
}

// Run executes the game loop until the game is decided.
func (e *Local) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Board.ToMove(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %s is starting", gameMetric.StartingPlayer)

	winner := game.None
	outcome := metrics.TurnLimit
	for step := 1; step <= e.maxTurns; step++ {
		if g := e.Board.IsGoal(); g >= 0 {
			winner, outcome = goalResult(g)
			break
		}

		player := e.Board.ToMove()
		current := e.agentFor(player)
		column := current.FindMove(e.Board)

		mm := metrics.MoveMetric{Step: step, Player: player, Column: column}
		if m, ok := current.(metered); ok {
			mm.SearchMetric = m.Metrics()
		}
		moveMetrics = append(moveMetrics, mm)

		if column == searcher.NoMove {
			log.Warn().Msgf("player %s returned no move", player)
			winner, outcome = player.Opponent(), metrics.Resigned
			break
		}
		next, err := e.Board.Drop(column)
		if err != nil {
			log.Warn().Err(err).Msgf("player %s forfeits", player)
			winner, outcome = player.Opponent(), metrics.Forfeited
			break
		}
		e.Board = next

		log.Debug().
			Int("step", step).
			Str("player", player.String()).
			Int("column", column).
			Int64("nodes", mm.Nodes).
			Dur("duration", mm.Duration).
			Msg("move played")
		if e.observe != nil {
			e.observe(MoveEvent{Step: step, Player: player, Column: column, Board: e.Board})
		}
	}
	if outcome == metrics.TurnLimit {
		if g := e.Board.IsGoal(); g >= 0 {
			winner, outcome = goalResult(g)
		} else {
			log.Info().Msgf("stopped after %d turns without a result", e.maxTurns)
		}
	}

	gameMetric.Winner = winner
	gameMetric.Outcome = outcome
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Info().Msgf("game over after %d moves: %s, winner %s", gameMetric.TotalMoves, outcome, winner)
	return winner, gameMetric, moveMetrics
}

func goalResult(g float64) (game.Player, metrics.Outcome) {
	switch g {
	case game.FirstWins:
		return game.First, metrics.Connected
	case game.SecondWins:
		return game.Second, metrics.Connected
	}
	return game.None, metrics.Drawn
}
