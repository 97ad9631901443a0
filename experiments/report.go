package experiments

import (
	"fmt"
	"slices"

	"connectfour/game"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
)

const (
	reportBins  = 10
	reportWidth = 40
)

// report prints, per agent, a histogram of the nodes visited by each searched
// move.
func (x Experiment) report(results []result) error {
	if x.Report == nil {
		return nil
	}
	nodes := map[int][]float64{}
	for _, r := range results {
		for _, m := range r.moves {
			if m.Nodes == 0 {
				continue
			}
			id := r.game.Agent1
			if m.Player == game.Second {
				id = r.game.Agent2
			}
			nodes[id] = append(nodes[id], float64(m.Nodes))
		}
	}

	ids := lo.Keys(nodes)
	slices.Sort(ids)
	for _, id := range ids {
		counts := nodes[id]
		low, high := lo.Min(counts), lo.Max(counts)
		fmt.Fprintf(x.Report, "agent %d nodes per move (%d moves, mean %.1f)\n", id, len(counts), lo.Mean(counts))
		if low == high {
			fmt.Fprintf(x.Report, "every move visited %.0f nodes\n", low)
			continue
		}
		if err := histogram.Fprint(x.Report, histogram.Hist(reportBins, counts), histogram.Linear(reportWidth)); err != nil {
			return fmt.Errorf("failed to print histogram: %w", err)
		}
	}
	return nil
}
