package experiments

import (
	"fmt"

	"connectfour/experiments/metrics"
	"connectfour/searcher"

	"github.com/samber/lo"
)

// Presets builds the named experiments for a depth.
var Presets = map[string]func(depth int) Experiment{
	"cutoff":    Cutoff,
	"pruning":   Pruning,
	"random":    RandomBaseline,
	"heuristic": Heuristic,
}

// Cutoff pairs alpha-beta agents of other depths against the given depth,
// alternating who moves first.
func Cutoff(depth int) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Kind: searcher.KindAlphaBetaCutoff.String(), Depth: depth}
	configs := []metrics.AgentConfig{baseline}
	var matchUps []Matchup
	challengers := lo.Without(lo.Uniq([]int{1, depth + 1, depth + 2}), depth)
	for i, d := range challengers {
		config := metrics.AgentConfig{ID: i + 1, Kind: searcher.KindAlphaBetaCutoff.String(), Depth: d}
		configs = append(configs, config)
		matchUps = append(matchUps, Matchup{First: baseline, Second: config}, Matchup{First: config, Second: baseline})
	}
	return Experiment{Name: "cutoff", Configs: configs, Matchups: matchUps}
}

// Pruning plays minimax against alpha-beta at the same depth. Both choose the
// same moves, so the records isolate the node savings of pruning.
func Pruning(depth int) Experiment {
	minimax := metrics.AgentConfig{ID: 1, Kind: searcher.KindMinimaxCutoff.String(), Depth: depth}
	alphaBeta := metrics.AgentConfig{ID: 2, Kind: searcher.KindAlphaBetaCutoff.String(), Depth: depth}
	return Experiment{
		Name:     "pruning",
		Games:    1,
		Configs:  []metrics.AgentConfig{minimax, alphaBeta},
		Matchups: []Matchup{{First: minimax, Second: alphaBeta}, {First: alphaBeta, Second: minimax}},
	}
}

// RandomBaseline measures a cutoff searcher against random play.
func RandomBaseline(depth int) Experiment {
	random := metrics.AgentConfig{ID: 0, Kind: RandomKind, Seed: 1}
	search := metrics.AgentConfig{ID: 1, Kind: searcher.KindAlphaBetaCutoff.String(), Depth: depth}
	return Experiment{
		Name:     "random",
		Configs:  []metrics.AgentConfig{random, search},
		Matchups: []Matchup{{First: random, Second: search}, {First: search, Second: random}},
	}
}

// Heuristic compares board evaluations at the same depth.
func Heuristic(depth int) Experiment {
	windows := metrics.AgentConfig{ID: 1, Kind: searcher.KindAlphaBetaCutoff.String(), Depth: depth, Evaluate: "windows"}
	center := metrics.AgentConfig{ID: 2, Kind: searcher.KindAlphaBetaCutoff.String(), Depth: depth, Evaluate: "center"}
	return Experiment{
		Name:     "heuristic",
		Configs:  []metrics.AgentConfig{windows, center},
		Matchups: []Matchup{{First: windows, Second: center}, {First: center, Second: windows}},
	}
}

func Preset(name string, depth int) (Experiment, error) {
	build, ok := Presets[name]
	if !ok {
		return Experiment{}, fmt.Errorf("unknown experiment %q", name)
	}
	return build(depth), nil
}
