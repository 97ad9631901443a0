package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"connectfour/meta"

	"github.com/spf13/viper"
)

type Agent struct {
	Kind     string `mapstructure:"kind"`
	Depth    int    `mapstructure:"depth"`
	Evaluate string `mapstructure:"evaluate"`
	URL      string `mapstructure:"url"` // Remote agents only
}

type Experiment struct {
	Name        string `mapstructure:"name"`
	Games       int    `mapstructure:"games"`
	Parallelism int    `mapstructure:"parallelism"`
	Out         string `mapstructure:"out"`
}

type Board struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

type Server struct {
	Addr  string `mapstructure:"addr"`
	Agent Agent  `mapstructure:"agent"`
}

type Config struct {
	Command    string     `mapstructure:"-"`
	LogLevel   string     `mapstructure:"log-level"`
	Seed       uint64     `mapstructure:"seed"`
	Board      Board      `mapstructure:"board"`
	First      Agent      `mapstructure:"first"`
	Second     Agent      `mapstructure:"second"`
	Experiment Experiment `mapstructure:"experiment"`
	Server     Server     `mapstructure:"server"`
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"log-level":    "log-level",
	"seed":         "seed",
	"width":        "board.width",
	"height":       "board.height",
	"first":        "first.kind",
	"first-depth":  "first.depth",
	"first-eval":   "first.evaluate",
	"first-url":    "first.url",
	"second":       "second.kind",
	"second-depth": "second.depth",
	"second-eval":  "second.evaluate",
	"second-url":   "second.url",
	"experiment":   "experiment.name",
	"games":        "experiment.games",
	"parallelism":  "experiment.parallelism",
	"out":          "experiment.out",
	"addr":         "server.addr",
	"agent":        "server.agent.kind",
	"depth":        "server.agent.depth",
	"eval":         "server.agent.evaluate",
}

var ErrHelp = flag.ErrHelp

func setDefaults(v *viper.Viper) {
	v.SetDefault("log-level", "info")
	v.SetDefault("seed", 1)
	v.SetDefault("board.width", meta.Width)
	v.SetDefault("board.height", meta.Height)
	v.SetDefault("first.kind", "alphabeta-cutoff")
	v.SetDefault("first.depth", meta.Depth)
	v.SetDefault("second.kind", "random")
	v.SetDefault("second.depth", meta.Depth)
	for _, side := range []string{"first", "second", "server.agent"} {
		v.SetDefault(side+".evaluate", "")
	}
	v.SetDefault("first.url", "")
	v.SetDefault("second.url", "")
	v.SetDefault("experiment.name", "cutoff")
	v.SetDefault("experiment.games", meta.Games)
	v.SetDefault("experiment.parallelism", meta.Parallelism)
	v.SetDefault("experiment.out", "experiments")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.agent.kind", "alphabeta-cutoff")
	v.SetDefault("server.agent.depth", meta.Depth)
}

// Load reads the configuration from defaults, an optional config file,
// CONNECTFOUR_* environment variables and args, in increasing precedence.
// The first positional argument is the command.
func Load(args []string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	fs := flag.NewFlagSet("connectfour", flag.ContinueOnError)
	configFile := fs.String("config", "", "path to a YAML, TOML or JSON config file")
	fs.String("log-level", "", "debug, info, warn or disabled")
	fs.Uint64("seed", 0, "seed for random agents")
	fs.Int("width", 0, "board columns")
	fs.Int("height", 0, "board rows")
	for _, side := range []string{"first", "second"} {
		fs.String(side, "", side+" player: minimax, minimax-cutoff, alphabeta, alphabeta-cutoff, random, human or remote")
		fs.Int(side+"-depth", 0, side+" player search depth")
		fs.String(side+"-eval", "", side+" player evaluation: windows or center")
		fs.String(side+"-url", "", side+" player agent server URL")
	}
	fs.String("experiment", "", "experiment preset: cutoff, pruning, random or heuristic")
	fs.Int("games", 0, "games per matchup")
	fs.Int("parallelism", 0, "games played at once")
	fs.String("out", "", "experiment output directory")
	fs.String("addr", "", "agent server listen address")
	fs.String("agent", "", "agent server search kind")
	fs.Int("depth", 0, "agent server search depth")
	fs.String("eval", "", "agent server evaluation")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("CONNECTFOUR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Only flags given on the command line override the other sources.
	fs.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			v.Set(key, f.Value.String())
		}
	})

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Command = fs.Arg(0)
	if cfg.Command == "" {
		cfg.Command = "play"
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid board size %dx%d", c.Board.Width, c.Board.Height))
	}
	switch c.Command {
	case "play", "experiment", "serve":
	default:
		errs = append(errs, fmt.Errorf("unknown command %q", c.Command))
	}
	if c.Experiment.Games < 0 || c.Experiment.Parallelism < 0 {
		errs = append(errs, errors.New("experiment games and parallelism must not be negative"))
	}
	return errors.Join(errs...)
}
