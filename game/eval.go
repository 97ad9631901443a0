package game

// Window weights indexed by the number of same-colored discs in an otherwise
// empty window of Connect cells.
var windowWeights = [Connect]float64{0, 1, 10, 100}

const centerWeight = 3.0

type window struct {
	column, row int
	dc, dr      int
}

var directions = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// windows enumerates every line of Connect cells that fits on the board.
func (b *Board) windows() []window {
	var ws []window
	for column := 0; column < b.width; column++ {
		for row := 0; row < b.height; row++ {
			for _, d := range directions {
				endColumn := column + d[0]*(Connect-1)
				endRow := row + d[1]*(Connect-1)
				if endColumn < 0 || endColumn >= b.width || endRow < 0 || endRow >= b.height {
					continue
				}
				ws = append(ws, window{column: column, row: row, dc: d[0], dr: d[1]})
			}
		}
	}
	return ws
}

// windowOwner returns the only player with discs in w, or None when w is
// empty or contested.
func (b *Board) windowOwner(w window) Player {
	owner := None
	for i := 0; i < Connect; i++ {
		p := b.Cell(w.column+i*w.dc, w.row+i*w.dr)
		if p == None {
			continue
		}
		if owner == None {
			owner = p
		} else if owner != p {
			return None
		}
	}
	return owner
}

func (b *Board) windowCount(w window, player Player) int {
	count := 0
	for i := 0; i < Connect; i++ {
		if b.Cell(w.column+i*w.dc, w.row+i*w.dr) == player {
			count++
		}
	}
	return count
}

// EvaluateWindows scores open lines: every window claimed by a single player
// adds (first) or subtracts (second) a weight growing with its disc count.
func EvaluateWindows(b *Board) float64 {
	score := 0.0
	for _, w := range b.windows() {
		owner := b.windowOwner(w)
		if owner == None {
			continue
		}
		n := min(b.windowCount(w, owner), Connect-1)
		if owner == First {
			score += windowWeights[n]
		} else {
			score -= windowWeights[n]
		}
	}
	return Draw + score
}

// EvaluateCenter is EvaluateWindows plus a bonus for discs in the middle
// column(s).
func EvaluateCenter(b *Board) float64 {
	score := EvaluateWindows(b)
	left, right := (b.width-1)/2, b.width/2
	for column := left; column <= right; column++ {
		for _, p := range b.columns[column] {
			switch p {
			case First:
				score += centerWeight
			case Second:
				score -= centerWeight
			}
		}
	}
	return score
}

// Evaluations maps names usable in configuration to evaluation functions.
var Evaluations = map[string]Evaluate{
	"windows": EvaluateWindows,
	"center":  EvaluateCenter,
}
