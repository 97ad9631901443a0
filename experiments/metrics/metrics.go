package metrics

import (
	"time"

	"connectfour/game"
	"connectfour/searcher"
)

// Outcome is how a game ended.
type Outcome string

const (
	Connected Outcome = "connected"  // A player got four in a row
	Drawn     Outcome = "draw"       // The board filled up
	Forfeited Outcome = "forfeit"    // A player chose an unplayable column
	Resigned  Outcome = "resigned"   // A player returned no move
	TurnLimit Outcome = "turn_limit" // The game was cut short
)

type AgentConfig struct {
	ID       int    `yaml:"id"`
	Kind     string `yaml:"kind"`
	Depth    int    `yaml:"depth,omitempty"`
	Evaluate string `yaml:"evaluate,omitempty"`
	Seed     uint64 `yaml:"seed,omitempty"` // Random agents only
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Column int
	searcher.SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Player
	Outcome        Outcome
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}
