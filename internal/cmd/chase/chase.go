// Package chase parses chase command flags and starts the gRPC service.
package chase

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/progressions/shot-client-next-sub002/internal/platform/cmd"
	server "github.com/progressions/shot-client-next-sub002/internal/services/chase/app"
)

// Config holds chase command configuration.
type Config struct {
	Port       int    `env:"CHASE_PORT" envDefault:"8080"`
	Addr       string `env:"CHASE_ADDR"`
	RosterPath string `env:"CHASE_ROSTER_PATH"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The chase server port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The chase server listen address (overrides -port)")
	fs.StringVar(&cfg.RosterPath, "roster", cfg.RosterPath, "YAML roster of vehicles to preload")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// listenAddr returns Addr, or all interfaces on Port.
func (c Config) listenAddr() string {
	if c.Addr != "" {
		return c.Addr
	}
	return fmt.Sprintf(":%d", c.Port)
}

// Run starts the chase gRPC service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceChase, func(ctx context.Context) error {
		return server.Run(ctx, cfg.listenAddr(), server.Options{RosterPath: cfg.RosterPath})
	})
}
