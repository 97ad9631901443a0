package experiments

import (
	"context"
	"fmt"
	"io"

	"connectfour/agent"
	"connectfour/engine"
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/meta"
	"connectfour/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// RandomKind is the agent kind name for a random mover.
const RandomKind = "random"

type Matchup struct {
	First  metrics.AgentConfig
	Second metrics.AgentConfig
}

type Experiment struct {
	Name        string
	Width       int
	Height      int
	Games       int // Per matchup
	Parallelism int // Games played at once
	OutDir      string
	Report      io.Writer // Receives node histograms when set
	Configs     []metrics.AgentConfig
	Matchups    []Matchup
}

// Tally counts results of one matchup.
type Tally struct {
	Matchup
	FirstWins  int
	SecondWins int
	Draws      int
	Unfinished int
}

// NewAgent builds the agent described by config for side.
func NewAgent(config metrics.AgentConfig, side game.Player) (agent.Agent, error) {
	if config.Kind == RandomKind {
		return agent.NewRandomAgent(config.Seed), nil
	}
	kind, err := searcher.ParseKind(config.Kind)
	if err != nil {
		return nil, fmt.Errorf("agent %d: %w", config.ID, err)
	}
	a, err := agent.NewSearchAgent(kind, config.Depth, side)
	if err != nil {
		return nil, fmt.Errorf("agent %d: %w", config.ID, err)
	}
	if config.Evaluate == "" {
		return a, nil
	}
	evaluate, ok := game.Evaluations[config.Evaluate]
	if !ok {
		return nil, fmt.Errorf("agent %d: unknown evaluation %q", config.ID, config.Evaluate)
	}
	return agent.WithEvaluation(a, evaluate), nil
}

type result struct {
	game  metrics.GameRecord
	moves []metrics.MoveRecord
}

// Run plays every matchup and stores the records under OutDir. Games share no
// state, so they run concurrently up to Parallelism at a time.
func (x Experiment) Run(ctx context.Context) ([]Tally, error) {
	if x.Width <= 0 || x.Height <= 0 {
		x.Width, x.Height = meta.Width, meta.Height
	}
	if x.Games <= 0 {
		x.Games = meta.Games
	}
	if x.Parallelism <= 0 {
		x.Parallelism = meta.Parallelism
	}

	log.Info().Msgf("starting %s experiment...", x.Name)

	results := make([]result, len(x.Matchups)*x.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(x.Parallelism)
	for mi, matchup := range x.Matchups {
		mi, matchup := mi, matchup // per-iteration copies (go < 1.22 loop semantics)
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(x.Matchups), matchup.First, matchup.Second)
		for i := 0; i < x.Games; i++ {
			i := i
			id := mi*x.Games + i + 1
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				r, err := x.runGame(id, matchup)
				if err != nil {
					return err
				}
				results[id-1] = r
				log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(x.Matchups), i+1, r.game.Winner)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s experiment: %w", x.Name, err)
	}

	log.Info().Msgf("completed %s experiment", x.Name)

	if err := x.store(results); err != nil {
		return nil, err
	}
	if err := x.report(results); err != nil {
		return nil, err
	}
	return x.tally(results), nil
}

func (x Experiment) runGame(id int, matchup Matchup) (result, error) {
	first, err := NewAgent(matchup.First, game.First)
	if err != nil {
		return result{}, err
	}
	second, err := NewAgent(matchup.Second, game.Second)
	if err != nil {
		return result{}, err
	}
	e := engine.NewLocal(first, second, game.NewBoard(x.Width, x.Height))
	_, gameMetric, moveMetrics := e.Run()

	r := result{game: metrics.GameRecord{
		ID:         id,
		Agent1:     matchup.First.ID,
		Agent2:     matchup.Second.ID,
		GameMetric: gameMetric,
	}}
	for _, mm := range moveMetrics {
		r.moves = append(r.moves, metrics.MoveRecord{Game: id, MoveMetric: mm})
	}
	return r, nil
}

func (x Experiment) store(results []result) error {
	if x.OutDir == "" {
		return nil
	}
	writer, err := metrics.NewWriter(x.OutDir, x.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(x.Configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	gameRecords := make([]metrics.GameRecord, 0, len(results))
	var moveRecords []metrics.MoveRecord
	for _, r := range results {
		gameRecords = append(gameRecords, r.game)
		moveRecords = append(moveRecords, r.moves...)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

func (x Experiment) tally(results []result) []Tally {
	tallies := make([]Tally, len(x.Matchups))
	for mi, matchup := range x.Matchups {
		tallies[mi].Matchup = matchup
		for _, r := range results[mi*x.Games : (mi+1)*x.Games] {
			switch {
			case r.game.Outcome == metrics.TurnLimit:
				tallies[mi].Unfinished++
			case r.game.Winner == game.First:
				tallies[mi].FirstWins++
			case r.game.Winner == game.Second:
				tallies[mi].SecondWins++
			default:
				tallies[mi].Draws++
			}
		}
	}
	return tallies
}
