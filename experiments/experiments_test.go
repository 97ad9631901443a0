package experiments

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"connectfour/agent"
	"connectfour/experiments/metrics"
	"connectfour/game"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewAgent(t *testing.T) {
	t.Run("builds search agents", func(t *testing.T) {
		a, err := NewAgent(metrics.AgentConfig{Kind: "alphabeta-cutoff", Depth: 3}, game.Second)
		require.NoError(t, err)
		require.IsType(t, &agent.SearchAgent{}, a)
		require.Equal(t, game.Second, a.(*agent.SearchAgent).Side())
	})

	t.Run("builds random agents", func(t *testing.T) {
		a, err := NewAgent(metrics.AgentConfig{Kind: RandomKind, Seed: 3}, game.First)
		require.NoError(t, err)
		require.IsType(t, &agent.RandomAgent{}, a)
	})

	t.Run("rejects unknown kinds and evaluations", func(t *testing.T) {
		_, err := NewAgent(metrics.AgentConfig{Kind: "negamax"}, game.First)
		require.Error(t, err)
		_, err = NewAgent(metrics.AgentConfig{Kind: "minimax-cutoff", Depth: 1, Evaluate: "mobility"}, game.First)
		require.Error(t, err)
		_, err = NewAgent(metrics.AgentConfig{Kind: "minimax-cutoff"}, game.First)
		require.Error(t, err)
	})
}

func TestRunPruningExperiment(t *testing.T) {
	x := Pruning(2)
	x.Width, x.Height = 5, 4
	x.OutDir = t.TempDir()

	tallies, err := x.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, tallies, 2)
	// Minimax and alpha-beta pick the same columns, so swapping them does
	// not change the game.
	require.Equal(t, tallies[0].FirstWins, tallies[1].FirstWins)
	require.Equal(t, tallies[0].SecondWins, tallies[1].SecondWins)
	require.Equal(t, tallies[0].Draws, tallies[1].Draws)

	dirs, err := filepath.Glob(filepath.Join(x.OutDir, "pruning", "*"))
	require.NoError(t, err)
	require.Len(t, dirs, 1)

	moves := readCSV(t, filepath.Join(dirs[0], "move_records.csv"))
	require.Equal(t, []string{"game", "step", "player", "column", "kind", "depth", "duration", "nodes", "terminals", "cutoffs", "pruned"}, moves[0])
	games := readCSV(t, filepath.Join(dirs[0], "game_records.csv"))
	require.Len(t, games, 3, "header and two games")

	data, err := os.ReadFile(filepath.Join(dirs[0], "agent_configs.yaml"))
	require.NoError(t, err)
	var stored struct {
		Agents []metrics.AgentConfig `yaml:"agents"`
	}
	require.NoError(t, yaml.Unmarshal(data, &stored))
	require.Equal(t, x.Configs, stored.Agents)
}

func TestRunRandomBaseline(t *testing.T) {
	x := RandomBaseline(3)
	x.Width, x.Height = 5, 4
	x.Games = 3
	x.Parallelism = 2

	tallies, err := x.Run(context.Background())
	require.NoError(t, err)

	for _, tally := range tallies {
		require.Equal(t, 3, tally.FirstWins+tally.SecondWins+tally.Draws+tally.Unfinished)
		require.Zero(t, tally.Unfinished)
	}
}

func TestReport(t *testing.T) {
	var out bytes.Buffer
	x := Pruning(2)
	x.Width, x.Height = 5, 4
	x.Report = &out

	_, err := x.Run(context.Background())
	require.NoError(t, err)

	require.Contains(t, out.String(), "agent 1 nodes per move")
	require.Contains(t, out.String(), "agent 2 nodes per move")
}

func TestRunStopsOnBadConfig(t *testing.T) {
	bad := metrics.AgentConfig{ID: 9, Kind: "unknown"}
	x := Experiment{Name: "bad", Width: 4, Height: 4, Games: 2, Matchups: []Matchup{{First: bad, Second: bad}}}

	_, err := x.Run(context.Background())
	require.Error(t, err)
}

func TestPresets(t *testing.T) {
	for name := range Presets {
		x, err := Preset(name, 3)
		require.NoError(t, err)
		require.Equal(t, name, x.Name)
		require.NotEmpty(t, x.Matchups)
		for _, m := range x.Matchups {
			require.Contains(t, x.Configs, m.First)
			require.Contains(t, x.Configs, m.Second)
		}
	}

	_, err := Preset("tournament", 3)
	require.Error(t, err)
}

func TestCutoffChallengersDifferFromBaseline(t *testing.T) {
	for _, depth := range []int{1, 2, 4} {
		x := Cutoff(depth)
		baseline := x.Configs[0]
		require.Len(t, x.Matchups, 2*(len(x.Configs)-1), "depth %d", depth)
		for _, config := range x.Configs[1:] {
			require.NotEqual(t, baseline.Depth, config.Depth, "depth %d", depth)
		}
	}
	require.Len(t, Cutoff(1).Configs, 3, "depth 1 has challengers 2 and 3 only")
	require.Len(t, Cutoff(4).Configs, 4)
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
