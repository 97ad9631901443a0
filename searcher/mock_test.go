package searcher

import "connectfour/game"

// mockPosition is a hand-built game tree. A nil child is a full column.
type mockPosition struct {
	full      bool
	goal      float64
	heuristic float64
	children  []*mockPosition
	plays     *int
}

// node is an internal mock position with the given children.
func node(children ...*mockPosition) *mockPosition {
	return &mockPosition{goal: game.NotGoal, children: children}
}

// leaf is a non-terminal mock position without children, only ever reached at
// a depth cutoff.
func leaf(heuristic float64) *mockPosition {
	return &mockPosition{goal: game.NotGoal, heuristic: heuristic}
}

// goal is a finished mock position.
func goal(value float64) *mockPosition {
	return &mockPosition{goal: value, heuristic: value}
}

func (m *mockPosition) Width() int {
	return len(m.children)
}

func (m *mockPosition) CanPlay(column int) bool {
	return column >= 0 && column < len(m.children) && m.children[column] != nil
}

func (m *mockPosition) Play(column int) game.Position {
	if m.plays != nil {
		*m.plays++
	}
	return m.children[column]
}

func (m *mockPosition) IsFull() bool {
	return m.full
}

func (m *mockPosition) IsGoal() float64 {
	return m.goal
}

func (m *mockPosition) Heuristic() float64 {
	return m.heuristic
}

func allKinds(depth int) map[string]Searcher {
	return map[string]Searcher{
		"minimax":          NewMinimax(),
		"minimax cutoff":   NewMinimaxCutoff(depth),
		"alphabeta":        NewAlphaBeta(),
		"alphabeta cutoff": NewAlphaBetaCutoff(depth),
	}
}
