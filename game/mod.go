package game

// Goal values reported by IsGoal for finished games, from the first player's
// perspective. Heuristic estimates always fall strictly between SecondWins and
// FirstWins.
const (
	SecondWins = 0.0
	Draw       = 500000.0
	FirstWins  = 1000000.0

	// NotGoal is returned by IsGoal for positions that are still in play.
	NotGoal = -1.0
)

// Position is the view of a game state that the searcher needs. Positions are
// immutable: Play always returns a new Position and leaves the receiver as is.
type Position interface {
	Width() int
	CanPlay(column int) bool
	Play(column int) Position
	IsFull() bool
	// IsGoal returns a non-negative terminal value for a won or drawn game,
	// or NotGoal otherwise.
	IsGoal() float64
	Heuristic() float64
}

// Evaluate scores a position from the first player's perspective.
type Evaluate func(*Board) float64
