package searcher

import "connectfour/game"

// Minimax searches the full game tree below a position.
type Minimax struct {
	settings
}

func NewMinimax(options ...Option) *Minimax {
	return &Minimax{settings: newSettings(options)}
}

func (m *Minimax) Search(pos game.Position, player game.Player) Result {
	return m.run(KindMinimax, 0, func() Result {
		return m.minimax(pos, unlimited(), player)
	})
}

// MinimaxCutoff searches depth plies and scores the frontier by heuristic.
type MinimaxCutoff struct {
	settings
	depth int
}

func NewMinimaxCutoff(depth int, options ...Option) *MinimaxCutoff {
	if depth < 1 {
		panic("minimax cutoff depth must be at least 1")
	}
	return &MinimaxCutoff{settings: newSettings(options), depth: depth}
}

func (m *MinimaxCutoff) Depth() int {
	return m.depth
}

func (m *MinimaxCutoff) Search(pos game.Position, player game.Player) Result {
	return m.run(KindMinimaxCutoff, m.depth, func() Result {
		return m.minimax(pos, limitedTo(m.depth), player)
	})
}

func (s *settings) minimax(pos game.Position, depth budget, player game.Player) Result {
	if result, ok := s.leaf(pos, depth); ok {
		return result
	}

	best := Result{Score: worst(player), Move: NoMove}
	for _, c := range s.expand(pos) {
		score := s.minimax(c.position, depth.next(), player.Opponent()).Score
		if player.Maximizes() {
			if best.Score < score {
				best = Result{Score: score, Move: c.column}
			}
		} else {
			if best.Score > score {
				best = Result{Score: score, Move: c.column}
			}
		}
	}
	return best
}
