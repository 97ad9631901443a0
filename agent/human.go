package agent

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"connectfour/game"
	"connectfour/searcher"
)

// HumanAgent asks for columns on out and reads them from in, one per line.
type HumanAgent struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHumanAgent(in io.Reader, out io.Writer) *HumanAgent {
	return &HumanAgent{in: bufio.NewScanner(in), out: out}
}

// FindMove prompts until a playable column is entered. It returns
// searcher.NoMove once the input is exhausted.
func (a *HumanAgent) FindMove(pos game.Position) int {
	if s, ok := pos.(fmt.Stringer); ok {
		fmt.Fprint(a.out, s.String())
	}
	for {
		fmt.Fprintf(a.out, "column (0-%d): ", pos.Width()-1)
		if !a.in.Scan() {
			return searcher.NoMove
		}
		column, err := strconv.Atoi(strings.TrimSpace(a.in.Text()))
		if err != nil {
			fmt.Fprintln(a.out, "not a number")
			continue
		}
		if !pos.CanPlay(column) {
			fmt.Fprintf(a.out, "column %d is not playable\n", column)
			continue
		}
		return column
	}
}

func (a *HumanAgent) String() string {
	return "human"
}
