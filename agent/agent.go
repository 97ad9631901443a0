package agent

import (
	"fmt"

	"connectfour/game"
	"connectfour/searcher"
)

type Agent interface {
	// FindMove returns the column to play in pos, or searcher.NoMove if there
	// is none.
	FindMove(pos game.Position) int
}

// SearchAgent plays one side of the game with a fixed search strategy.
type SearchAgent struct {
	searcher searcher.Searcher
	kind     searcher.Kind
	side     game.Player
	depth    int
	metrics  searcher.Collector
}

// NewSearchAgent returns an agent for side that searches with the given kind.
// depth is only used by cutoff kinds, which need it to be at least 1.
func NewSearchAgent(kind searcher.Kind, depth int, side game.Player, options ...searcher.Option) (*SearchAgent, error) {
	if side != game.First && side != game.Second {
		return nil, fmt.Errorf("invalid side %v", side)
	}
	metrics := searcher.NewCollector()
	options = append([]searcher.Option{searcher.WithMetrics(metrics)}, options...)
	s, err := searcher.New(kind, depth, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s agent: %w", kind, err)
	}
	if !kind.HasCutoff() {
		depth = 0
	}
	return &SearchAgent{
		searcher: s,
		kind:     kind,
		side:     side,
		depth:    depth,
		metrics:  metrics,
	}, nil
}

func (a *SearchAgent) FindMove(pos game.Position) int {
	return a.searcher.Search(pos, a.side).Move
}

func (a *SearchAgent) Side() game.Player {
	return a.side
}

func (a *SearchAgent) Kind() searcher.Kind {
	return a.kind
}

func (a *SearchAgent) Depth() int {
	return a.depth
}

// Metrics describes the most recent search.
func (a *SearchAgent) Metrics() searcher.SearchMetric {
	return a.metrics.Complete()
}

func (a *SearchAgent) String() string {
	if a.kind.HasCutoff() {
		return fmt.Sprintf("%s(depth=%d, side=%s)", a.kind, a.depth, a.side)
	}
	return fmt.Sprintf("%s(side=%s)", a.kind, a.side)
}
