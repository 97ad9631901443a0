package game

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/matryer/is"
)

func mustBoard(t *testing.T, width, height int, moves ...int) *Board {
	t.Helper()
	b, err := NewBoardFromMoves(width, height, moves)
	if err != nil {
		t.Fatalf("replaying %v: %v", moves, err)
	}
	return b
}

func TestEmptyBoard(t *testing.T) {
	is := is.New(t)
	b := NewBoard(7, 6)

	is.Equal(b.Width(), 7)
	is.Equal(b.Height(), 6)
	is.Equal(b.ToMove(), First)
	is.Equal(b.Discs(), 0)
	is.Equal(b.LegalColumns(), []int{0, 1, 2, 3, 4, 5, 6})
	is.True(!b.IsFull())
	is.Equal(b.IsGoal(), NotGoal)
	is.Equal(b.Heuristic(), Draw)
}

func TestDropAlternatesPlayers(t *testing.T) {
	is := is.New(t)
	b := mustBoard(t, 7, 6, 3, 3, 4)

	is.Equal(b.Cell(3, 0), First)
	is.Equal(b.Cell(3, 1), Second)
	is.Equal(b.Cell(4, 0), First)
	is.Equal(b.Cell(4, 1), None)
	is.Equal(b.ToMove(), Second)
}

func TestDropLeavesReceiverUnchanged(t *testing.T) {
	is := is.New(t)
	b := mustBoard(t, 7, 6, 3)

	next, err := b.Drop(3)
	is.NoErr(err)

	is.Equal(b.Discs(), 1)
	is.Equal(next.Discs(), 2)
	is.Equal(b.Cell(3, 1), None)
}

func TestIllegalDrops(t *testing.T) {
	is := is.New(t)
	b := mustBoard(t, 2, 2, 0, 0)

	_, err := b.Drop(0)
	is.True(errors.Is(err, ErrIllegalMove))
	_, err = b.Drop(2)
	is.True(errors.Is(err, ErrIllegalMove))
	_, err = b.Drop(-1)
	is.True(errors.Is(err, ErrIllegalMove))
	is.Equal(b.LegalColumns(), []int{1})
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name  string
		moves []int
		want  Player
	}{
		{name: "vertical", moves: []int{0, 1, 0, 1, 0, 1, 0}, want: First},
		{name: "horizontal", moves: []int{0, 0, 1, 1, 2, 2, 3}, want: First},
		{name: "rising diagonal", moves: []int{0, 1, 1, 2, 2, 3, 2, 3, 3, 6, 3}, want: First},
		{name: "falling diagonal", moves: []int{0, 3, 0, 0, 1, 0, 1, 1, 2, 2}, want: Second},
		{name: "three only", moves: []int{0, 1, 0, 1, 0}, want: None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			b := mustBoard(t, 7, 6, tt.moves...)
			is.Equal(b.Winner(), tt.want)
		})
	}
}

func TestGoalValues(t *testing.T) {
	is := is.New(t)

	first := mustBoard(t, 7, 6, 0, 1, 0, 1, 0, 1, 0)
	is.Equal(first.IsGoal(), FirstWins)
	is.Equal(first.Heuristic(), FirstWins)

	second := mustBoard(t, 7, 6, 6, 0, 1, 0, 1, 0, 1, 0)
	is.Equal(second.IsGoal(), SecondWins)
	is.Equal(second.Heuristic(), SecondWins)

	var draw Board
	is.NoErr(json.Unmarshal([]byte(`{"width":4,"height":4,"columns":[[1,2,1,2],[1,2,1,2],[2,1,2,1],[2,1,2,1]]}`), &draw))
	is.True(draw.IsFull())
	is.Equal(draw.Winner(), None)
	is.Equal(draw.IsGoal(), Draw)
	is.Equal(draw.Heuristic(), Draw)
}

func TestHeuristicStaysBetweenGoalValues(t *testing.T) {
	is := is.New(t)
	always := func(score float64) Evaluate {
		return func(*Board) float64 { return score }
	}
	b := mustBoard(t, 7, 6, 3)

	is.Equal(b.WithEvaluation(always(5*FirstWins)).Heuristic(), FirstWins-1)
	is.Equal(b.WithEvaluation(always(-FirstWins)).Heuristic(), SecondWins+1)
	is.Equal(b.WithEvaluation(nil).Heuristic(), b.Heuristic())
}

func TestJSONRoundTrip(t *testing.T) {
	is := is.New(t)
	b := mustBoard(t, 7, 6, 3, 3, 4)

	data, err := json.Marshal(b)
	is.NoErr(err)
	is.Equal(string(data), `{"width":7,"height":6,"columns":[[],[],[],[1,2],[1],[],[]]}`)

	var got Board
	is.NoErr(json.Unmarshal(data, &got))
	is.Equal(got.String(), b.String())
	is.Equal(got.ToMove(), Second)
}

func TestJSONRejectsMalformedBoards(t *testing.T) {
	inputs := map[string]string{
		"zero width":      `{"width":0,"height":6,"columns":[]}`,
		"column count":    `{"width":2,"height":2,"columns":[[]]}`,
		"overflow":        `{"width":1,"height":1,"columns":[[1,2]]}`,
		"unknown disc":    `{"width":1,"height":2,"columns":[[3]]}`,
		"too many second": `{"width":2,"height":2,"columns":[[2],[2]]}`,
		"both connect":    `{"width":2,"height":4,"columns":[[1,1,1,1],[2,2,2,2]]}`,
		"move after win":  `{"width":3,"height":4,"columns":[[1,1,1,1],[2,2,2],[2]]}`,
		"win under disc":  `{"width":5,"height":2,"columns":[[1,2],[1,2],[1,2],[1,1],[2]]}`,
	}
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)
			var b Board
			err := json.Unmarshal([]byte(input), &b)
			is.True(errors.Is(err, ErrBadBoard))
		})
	}
}

func TestJSONAcceptsFinishedGames(t *testing.T) {
	is := is.New(t)
	var b Board
	is.NoErr(json.Unmarshal([]byte(`{"width":3,"height":4,"columns":[[1,1,1,1],[2,2,2],[]]}`), &b))
	is.Equal(b.Winner(), First)
	is.Equal(b.IsGoal(), FirstWins)
}

func TestString(t *testing.T) {
	is := is.New(t)
	b := mustBoard(t, 4, 3, 1, 1, 2)

	is.Equal(b.String(), "|....|\n|.O..|\n|.XX.|\n 0123\n")
}
