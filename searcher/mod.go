package searcher

import (
	"math"

	"connectfour/game"
)

// NoMove is the column reported for positions where no move is searched:
// terminal positions and depth cutoffs.
const NoMove = -1

// Result is a backed-up score together with the column that achieves it.
type Result struct {
	Score float64
	Move  int
}

// Searcher picks the best column for player to move in a position.
type Searcher interface {
	Search(pos game.Position, player game.Player) Result
}

type child struct {
	column   int
	position game.Position
}

// generateChildren expands every playable column in increasing order. The
// order is the tie-break order of all searchers: with strict comparisons the
// first column reaching the best score wins.
func generateChildren(pos game.Position) []child {
	width := pos.Width()
	children := make([]child, 0, width)
	for column := 0; column < width; column++ {
		if pos.CanPlay(column) {
			children = append(children, child{column: column, position: pos.Play(column)})
		}
	}
	return children
}

// budget is the remaining search depth. An unlimited budget never runs out.
type budget struct {
	depth   int
	limited bool
}

func unlimited() budget {
	return budget{}
}

func limitedTo(depth int) budget {
	return budget{depth: depth, limited: true}
}

func (b budget) exhausted() bool {
	return b.limited && b.depth <= 0
}

func (b budget) next() budget {
	if !b.limited {
		return b
	}
	return budget{depth: b.depth - 1, limited: true}
}

// worst is the starting score for player, replaced by the first child.
func worst(player game.Player) float64 {
	if player.Maximizes() {
		return math.Inf(-1)
	}
	return math.Inf(1)
}
