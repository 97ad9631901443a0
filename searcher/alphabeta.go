package searcher

import (
	"math"

	"connectfour/game"
)

// AlphaBeta is Minimax with alpha-beta pruning. It returns the same scores as
// Minimax while skipping siblings that cannot change the result.
type AlphaBeta struct {
	settings
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	return &AlphaBeta{settings: newSettings(options)}
}

func (a *AlphaBeta) Search(pos game.Position, player game.Player) Result {
	return a.run(KindAlphaBeta, 0, func() Result {
		return a.alphaBeta(pos, unlimited(), player, math.Inf(-1), math.Inf(1))
	})
}

// AlphaBetaCutoff is AlphaBeta limited to depth plies with heuristic scores at
// the frontier.
type AlphaBetaCutoff struct {
	settings
	depth int
}

func NewAlphaBetaCutoff(depth int, options ...Option) *AlphaBetaCutoff {
	if depth < 1 {
		panic("alpha-beta cutoff depth must be at least 1")
	}
	return &AlphaBetaCutoff{settings: newSettings(options), depth: depth}
}

func (a *AlphaBetaCutoff) Depth() int {
	return a.depth
}

func (a *AlphaBetaCutoff) Search(pos game.Position, player game.Player) Result {
	return a.run(KindAlphaBetaCutoff, a.depth, func() Result {
		return a.alphaBeta(pos, limitedTo(a.depth), player, math.Inf(-1), math.Inf(1))
	})
}

// alphaBeta receives alpha and beta by value, so sibling branches never see
// each other's bound updates.
//
// Unless singleTracker is set, the best column is also recorded whenever the
// best score moves alpha (maximizer) or beta (minimizer).
func (s *settings) alphaBeta(pos game.Position, depth budget, player game.Player, alpha, beta float64) Result {
	if result, ok := s.leaf(pos, depth); ok {
		return result
	}

	best := Result{Score: worst(player), Move: NoMove}
	children := s.expand(pos)
	for i, c := range children {
		score := s.alphaBeta(c.position, depth.next(), player.Opponent(), alpha, beta).Score
		if player.Maximizes() {
			if best.Score < score {
				best = Result{Score: score, Move: c.column}
			}
			if best.Score > alpha {
				alpha = best.Score
				if !s.singleTracker {
					best.Move = c.column
				}
			}
		} else {
			if best.Score > score {
				best = Result{Score: score, Move: c.column}
			}
			if best.Score < beta {
				beta = best.Score
				if !s.singleTracker {
					best.Move = c.column
				}
			}
		}
		if alpha >= beta {
			s.metrics.AddPruned(len(children) - i - 1)
			break
		}
	}
	return best
}
