package agent

import (
	"connectfour/game"
	"connectfour/searcher"
)

type evaluating struct {
	Agent
	evaluate game.Evaluate
}

// WithEvaluation makes a search with a different board evaluation than the
// one the game is played with.
func WithEvaluation(a Agent, evaluate game.Evaluate) Agent {
	if evaluate == nil {
		return a
	}
	return &evaluating{Agent: a, evaluate: evaluate}
}

func (e *evaluating) FindMove(pos game.Position) int {
	if b, ok := pos.(*game.Board); ok {
		pos = b.WithEvaluation(e.evaluate)
	}
	return e.Agent.FindMove(pos)
}

func (e *evaluating) Metrics() searcher.SearchMetric {
	if m, ok := e.Agent.(interface{ Metrics() searcher.SearchMetric }); ok {
		return m.Metrics()
	}
	return searcher.SearchMetric{}
}
