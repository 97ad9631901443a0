package game

import (
	"testing"

	"github.com/matryer/is"
)

func TestEvaluateWindows(t *testing.T) {
	t.Run("empty board is even", func(t *testing.T) {
		is := is.New(t)
		is.Equal(EvaluateWindows(NewBoard(7, 6)), Draw)
	})

	t.Run("center disc touches seven windows", func(t *testing.T) {
		is := is.New(t)
		is.Equal(EvaluateWindows(mustBoard(t, 7, 6, 3)), Draw+7)
	})

	t.Run("corner disc touches three windows", func(t *testing.T) {
		is := is.New(t)
		is.Equal(EvaluateWindows(mustBoard(t, 7, 6, 0)), Draw+3)
	})

	t.Run("mirrored positions score opposite", func(t *testing.T) {
		is := is.New(t)
		// Second's discs mirror First's around the middle, so every
		// window has an opposite twin.
		b := mustBoard(t, 7, 6, 0, 6, 1, 5)
		is.Equal(EvaluateWindows(b), Draw)
	})

	t.Run("contested windows count for nobody", func(t *testing.T) {
		is := is.New(t)
		// Four columns wide leaves a single horizontal window per row.
		b := mustBoard(t, 4, 1, 0, 3)
		is.Equal(EvaluateWindows(b), Draw)
	})
}

func TestEvaluateCenter(t *testing.T) {
	is := is.New(t)
	b := mustBoard(t, 7, 6, 3)

	is.Equal(EvaluateCenter(b), EvaluateWindows(b)+centerWeight)
	is.Equal(EvaluateCenter(NewBoard(7, 6)), Draw)
}

func TestPlayer(t *testing.T) {
	is := is.New(t)

	is.Equal(First.Opponent(), Second)
	is.Equal(Second.Opponent(), First)
	is.Equal(None.Opponent(), None)
	is.True(First.Maximizes())
	is.True(!Second.Maximizes())

	p, err := ParsePlayer("second")
	is.NoErr(err)
	is.Equal(p, Second)
	_, err = ParsePlayer("third")
	is.True(err != nil)
}
