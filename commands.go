package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"connectfour/agent"
	"connectfour/communication/client"
	"connectfour/communication/server"
	"connectfour/config"
	"connectfour/engine"
	"connectfour/experiments"
	"connectfour/experiments/metrics"
	"connectfour/game"

	"github.com/rs/zerolog/log"
)

func buildAgent(c config.Agent, side game.Player, seed uint64) (agent.Agent, error) {
	switch c.Kind {
	case "human":
		return agent.NewHumanAgent(os.Stdin, os.Stdout), nil
	case "remote":
		if c.URL == "" {
			return nil, fmt.Errorf("%s player: remote agent needs a url", side)
		}
		return client.NewRemoteAgent(client.NewClient(c.URL, nil), 0), nil
	}
	return experiments.NewAgent(metrics.AgentConfig{
		Kind:     c.Kind,
		Depth:    c.Depth,
		Evaluate: c.Evaluate,
		Seed:     seed,
	}, side)
}

// play runs one game and prints the board after every move.
func play(cfg *config.Config) error {
	first, err := buildAgent(cfg.First, game.First, cfg.Seed)
	if err != nil {
		return err
	}
	second, err := buildAgent(cfg.Second, game.Second, cfg.Seed+1)
	if err != nil {
		return err
	}

	board := game.NewBoard(cfg.Board.Width, cfg.Board.Height)
	e := engine.NewLocal(first, second, board, engine.WithObserver(func(ev engine.MoveEvent) {
		fmt.Printf("move %d: %s plays %d\n%s\n", ev.Step, ev.Player, ev.Column, ev.Board)
	}))
	winner, gm, _ := e.Run()

	if winner == game.None {
		fmt.Printf("%s after %d moves\n", gm.Outcome, gm.TotalMoves)
	} else {
		fmt.Printf("%s wins (%s) after %d moves\n", winner, gm.Outcome, gm.TotalMoves)
	}
	return nil
}

func runExperiment(cfg *config.Config) error {
	x, err := experiments.Preset(cfg.Experiment.Name, cfg.First.Depth)
	if err != nil {
		return err
	}
	x.Width, x.Height = cfg.Board.Width, cfg.Board.Height
	if cfg.Experiment.Games > 0 {
		x.Games = cfg.Experiment.Games
	}
	x.Parallelism = cfg.Experiment.Parallelism
	x.OutDir = cfg.Experiment.Out
	x.Report = os.Stdout

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tallies, err := x.Run(ctx)
	if err != nil {
		return err
	}
	for _, tally := range tallies {
		fmt.Printf("agent %d vs agent %d: first %d, second %d, draws %d, unfinished %d\n",
			tally.First.ID, tally.Second.ID, tally.FirstWins, tally.SecondWins, tally.Draws, tally.Unfinished)
	}
	return nil
}

// serve exposes the configured server agent to remote games.
func serve(cfg *config.Config) error {
	first, err := buildAgent(cfg.Server.Agent, game.First, cfg.Seed)
	if err != nil {
		return err
	}
	second, err := buildAgent(cfg.Server.Agent, game.Second, cfg.Seed)
	if err != nil {
		return err
	}
	log.Info().Msgf("serving %s agent", cfg.Server.Agent.Kind)
	return server.NewServer(first, second).ListenAndServe(cfg.Server.Addr)
}
