package agent

import (
	"sync"

	"connectfour/game"
	"connectfour/searcher"

	"golang.org/x/exp/rand"
)

// RandomAgent plays a uniformly random legal column.
type RandomAgent struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindMove(pos game.Position) int {
	var columns []int
	for column := 0; column < pos.Width(); column++ {
		if pos.CanPlay(column) {
			columns = append(columns, column)
		}
	}
	if len(columns) == 0 {
		return searcher.NoMove
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return columns[a.rng.Intn(len(columns))]
}

func (a *RandomAgent) String() string {
	return "random"
}
