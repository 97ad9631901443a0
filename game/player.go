package game

import "fmt"

// Player identifies a side. First moves first and maximizes scores, Second
// minimizes them.
type Player int

const (
	None Player = iota
	First
	Second
)

func (p Player) Opponent() Player {
	switch p {
	case First:
		return Second
	case Second:
		return First
	default:
		return None
	}
}

func (p Player) Maximizes() bool {
	return p == First
}

func (p Player) String() string {
	switch p {
	case First:
		return "first"
	case Second:
		return "second"
	case None:
		return "none"
	default:
		return fmt.Sprintf("player(%d)", int(p))
	}
}

// ParsePlayer accepts "first"/"1" and "second"/"2".
func ParsePlayer(s string) (Player, error) {
	switch s {
	case "first", "1":
		return First, nil
	case "second", "2":
		return Second, nil
	}
	return None, fmt.Errorf("unknown player %q", s)
}
