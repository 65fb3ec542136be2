// Package mcp parses MCP command flags and starts the stdio MCP server.
package mcp

import (
	"context"
	"flag"

	entrypoint "github.com/progressions/shot-client-next-sub002/internal/platform/cmd"
	mcpservice "github.com/progressions/shot-client-next-sub002/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	GRPCAddr string `env:"CHASE_GRPC_ADDR" envDefault:"localhost:8080"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.GRPCAddr, "grpc-addr", cfg.GRPCAddr, "chase server address")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		return mcpservice.Run(ctx, mcpservice.Config{GRPCAddr: cfg.GRPCAddr})
	})
}
