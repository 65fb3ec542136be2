// Package scenario parses scenario command flags and runs a Lua chase script.
package scenario

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"

	entrypoint "github.com/progressions/shot-client-next-sub002/internal/platform/cmd"
	"github.com/progressions/shot-client-next-sub002/internal/tools/scenario"
)

// Config holds scenario command configuration.
type Config struct {
	Scenario   string `env:"CHASE_SCENARIO_FILE"`
	Assertions bool   `env:"CHASE_SCENARIO_ASSERT"  envDefault:"true"`
	Verbose    bool   `env:"CHASE_SCENARIO_VERBOSE"`
	Seed       int64  `env:"CHASE_SCENARIO_SEED"    envDefault:"1"`
	Locale     string `env:"CHASE_LOCALE"           envDefault:"en-US"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Scenario, "scenario", cfg.Scenario, "path to scenario lua file")
	fs.BoolVar(&cfg.Assertions, "assert", cfg.Assertions, "enable assertions (disable to log expectations)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable verbose logging")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for swerves the scenario does not script")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "language of summary expectations")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the scenario command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if cfg.Scenario == "" {
		return errors.New("scenario path is required")
	}

	mode := scenario.AssertionStrict
	if !cfg.Assertions {
		mode = scenario.AssertionLogOnly
	}

	runner := scenario.NewRunner(scenario.Config{
		Seed:       cfg.Seed,
		Assertions: mode,
		Verbose:    cfg.Verbose,
		Logger:     log.New(errOut, "", 0),
		Locale:     cfg.Locale,
	})
	if err := runner.RunFile(ctx, cfg.Scenario); err != nil {
		return err
	}
	if failures := runner.Failures(); failures > 0 {
		fmt.Fprintf(out, "%s: %d expectations failed\n", cfg.Scenario, failures)
		return nil
	}
	fmt.Fprintf(out, "%s: ok\n", cfg.Scenario)
	return nil
}
