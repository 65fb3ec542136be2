// Package scenario runs Lua chase scripts against the chase engine.
package scenario

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/chase"
	"github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/swerve"
	"github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/vehicle"
)

// Config configures a scenario run.
type Config struct {
	// Seed feeds the roller used once scripted swerves run out.
	Seed       int64
	Assertions AssertionMode
	Verbose    bool
	Logger     *log.Logger
	// Locale selects the language of summary expectations.
	Locale string
}

// DefaultConfig returns the default runner configuration.
func DefaultConfig() Config {
	return Config{
		Assertions: AssertionStrict,
		Locale:     "en-US",
	}
}

// Runner executes scenarios.
type Runner struct {
	seed       int64
	locale     string
	assertions *Assertions
	logger     *log.Logger
	verbose    bool
}

// NewRunner builds a runner.
func NewRunner(cfg Config) *Runner {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	return &Runner{
		seed:       cfg.Seed,
		locale:     cfg.Locale,
		assertions: &Assertions{Mode: cfg.Assertions, Logger: logger},
		logger:     logger,
		verbose:    cfg.Verbose,
	}
}

// Failures reports how many expectations failed in log-only mode.
func (r *Runner) Failures() int {
	return r.assertions.Failures
}

// RunFile loads and runs a scenario file.
func (r *Runner) RunFile(ctx context.Context, path string) error {
	scenario, err := LoadScenarioFromFile(path)
	if err != nil {
		return err
	}
	return r.RunScenario(ctx, scenario)
}

// RunScenario executes every step of scenario in order. Each run starts
// from a fresh roster and a roller seeded with Config.Seed.
func (r *Runner) RunScenario(ctx context.Context, scenario *Scenario) error {
	if scenario == nil {
		return fmt.Errorf("scenario is required")
	}
	state := newScenarioState(r.seed, scenario.Dir)
	total := len(scenario.Steps)
	for index, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.logf("step %d/%d start: %s", index+1, total, step.Kind)
		if err := r.runStep(state, step); err != nil {
			return fmt.Errorf("scenario %s step %d (%s): %w", scenario.Name, index+1, step.Kind, err)
		}
		r.logf("step %d/%d done: %s", index+1, total, step.Kind)
	}
	return nil
}

func (r *Runner) logf(format string, args ...any) {
	if !r.verbose || r.logger == nil {
		return
	}
	r.logger.Printf(format, args...)
}

func (r *Runner) failf(format string, args ...any) error {
	return r.assertions.Failf(format, args...)
}

func (r *Runner) assertf(format string, args ...any) error {
	return r.assertions.Assertf(format, args...)
}

// scenarioState is the roster and last attack of one run.
type scenarioState struct {
	dir      string
	vehicles map[string]vehicle.Vehicle
	service  vehicle.Service
	roller   *swerve.Roller
	last     *chase.Context
}

func newScenarioState(seed int64, dir string) *scenarioState {
	return &scenarioState{
		dir:      dir,
		vehicles: map[string]vehicle.Vehicle{},
		service:  vehicle.NewService(),
		roller:   swerve.NewRoller(seed),
	}
}

func (s *scenarioState) path(name string) string {
	if filepath.IsAbs(name) || s.dir == "" {
		return name
	}
	return filepath.Join(s.dir, name)
}
