package searcher

import (
	"connectfour/game"

	"github.com/rs/zerolog/log"
)

// run wraps one top-level search with metric collection.
func (s *settings) run(kind Kind, depth int, search func() Result) Result {
	s.metrics.Start(kind, depth)
	result := search()
	metric := s.metrics.Complete()
	event := log.Debug().
		Str("kind", kind.String()).
		Int("depth", depth).
		Float64("score", result.Score).
		Int("move", result.Move)
	// The dummy collector counts nothing.
	if _, counted := s.metrics.(*collector); counted {
		event = event.Int64("nodes", metric.Nodes)
	}
	event.Msg("search complete")
	return result
}

// leaf scores pos when the search stops there: full boards and depth cutoffs
// are scored by the heuristic, goal positions by their goal value.
func (s *settings) leaf(pos game.Position, depth budget) (Result, bool) {
	s.metrics.AddNode()
	if pos.IsFull() {
		s.metrics.AddTerminal()
		return Result{Score: pos.Heuristic(), Move: NoMove}, true
	}
	if depth.exhausted() {
		s.metrics.AddCutoff()
		return Result{Score: pos.Heuristic(), Move: NoMove}, true
	}
	if g := pos.IsGoal(); g >= 0 {
		s.metrics.AddTerminal()
		return Result{Score: g, Move: NoMove}, true
	}
	return Result{}, false
}

func (s *settings) expand(pos game.Position) []child {
	children := generateChildren(pos)
	if len(children) == 0 {
		// Only a malformed Position can be neither full nor a goal yet have
		// no playable column.
		log.Warn().Msg("non-terminal position has no legal moves")
	}
	return children
}
