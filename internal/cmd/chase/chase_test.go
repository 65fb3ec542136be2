package chase

import (
	"context"
	"flag"
	"path/filepath"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Setenv("CHASE_PORT", "")
	t.Setenv("CHASE_ADDR", "")
	t.Setenv("CHASE_ROSTER_PATH", "")
	fs := flag.NewFlagSet("chase", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.Addr != "" || cfg.RosterPath != "" {
		t.Fatalf("expected empty addr and roster, got %+v", cfg)
	}
	if got := cfg.listenAddr(); got != ":8080" {
		t.Fatalf("listen addr = %q, want :8080", got)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("CHASE_ROSTER_PATH", "env-roster.yaml")
	fs := flag.NewFlagSet("chase", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-port", "9001", "-addr", "127.0.0.1:9999"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 9001 {
		t.Fatalf("expected port 9001, got %d", cfg.Port)
	}
	if cfg.listenAddr() != "127.0.0.1:9999" {
		t.Fatalf("expected addr override, got %q", cfg.listenAddr())
	}
	if cfg.RosterPath != "env-roster.yaml" {
		t.Fatalf("expected roster from env, got %q", cfg.RosterPath)
	}
}

func TestRunRejectsMissingRoster(t *testing.T) {
	t.Setenv("CHASE_OTEL_ENABLED", "false")
	err := Run(context.Background(), Config{
		Addr:       "127.0.0.1:0",
		RosterPath: filepath.Join(t.TempDir(), "missing.yaml"),
	})
	if err == nil {
		t.Fatal("expected error for missing roster")
	}
}
