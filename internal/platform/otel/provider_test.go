package otel_test

import (
	"context"
	"testing"

	"github.com/progressions/shot-client-next-sub002/internal/platform/otel"
)

func TestConfigActive(t *testing.T) {
	tests := []struct {
		name string
		cfg  otel.Config
		want bool
	}{
		{"no endpoint", otel.Config{}, false},
		{"endpoint", otel.Config{Endpoint: "http://localhost:4318"}, true},
		{"disabled", otel.Config{Endpoint: "http://localhost:4318", Enabled: "FALSE"}, false},
		{"blank endpoint", otel.Config{Endpoint: "  "}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Active(); got != tt.want {
				t.Fatalf("Active() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadConfigReadsPrefixedEnv(t *testing.T) {
	t.Setenv("CHASE_OTEL_ENDPOINT", "http://collector:4318")
	t.Setenv("CHASE_OTEL_ENABLED", "true")

	cfg, err := otel.LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Endpoint != "http://collector:4318" || cfg.Enabled != "true" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestSetupNoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("CHASE_OTEL_ENDPOINT", "")
	t.Setenv("CHASE_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "chase-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}

func TestSetupNoopWhenDisabled(t *testing.T) {
	t.Setenv("CHASE_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("CHASE_OTEL_ENABLED", "false")

	shutdown, err := otel.Setup(context.Background(), "chase-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupWithConfigCreatesProvider(t *testing.T) {
	// Non-routable, so nothing is exported.
	cfg := otel.Config{Endpoint: "http://192.0.2.1:4318"}

	shutdown, err := otel.SetupWithConfig(context.Background(), "chase-test", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if otel.Tracer("chase-test") == nil {
		t.Fatal("expected tracer")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}
