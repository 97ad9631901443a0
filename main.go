package main

import (
	"errors"
	"fmt"
	"os"

	"connectfour/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	setupLogging(cfg.LogLevel)

	switch cfg.Command {
	case "play":
		err = play(cfg)
	case "experiment":
		err = runExperiment(cfg)
	case "serve":
		err = serve(cfg)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", cfg.Command)
	}
}

func setupLogging(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	log.Debug().Msg("debug logging is on")
}
