package grpc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	gogrpc "google.golang.org/grpc"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

func TestDial(t *testing.T) {
	fixture := startHealthServer(t, grpc_health_v1.HealthCheckResponse_SERVING)

	conn, err := Dial(context.Background(), "passthrough:///bufnet", DialOptions{
		Timeout: 2 * time.Second,
		Service: chaseService,
		Extra:   []gogrpc.DialOption{fixture.dialer()},
	})
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	if err := conn.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestDialHealthStage(t *testing.T) {
	fixture := startHealthServer(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	start := time.Now()
	conn, err := Dial(context.Background(), "passthrough:///bufnet", DialOptions{
		Timeout: 200 * time.Millisecond,
		Service: chaseService,
		Extra:   []gogrpc.DialOption{fixture.dialer()},
	})
	if conn != nil {
		_ = conn.Close()
		t.Fatal("expected nil connection")
	}
	var dialErr *DialError
	if !errors.As(err, &dialErr) || dialErr.Stage != DialStageHealth {
		t.Fatalf("err = %v, want health stage DialError", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("timeout did not bound the health wait: %v", elapsed)
	}
}

func TestDialConnectStage(t *testing.T) {
	_, err := Dial(context.Background(), "bad-scheme://%%", DialOptions{Timeout: 100 * time.Millisecond})
	var dialErr *DialError
	if !errors.As(err, &dialErr) || dialErr.Stage != DialStageConnect {
		t.Fatalf("err = %v, want connect stage DialError", err)
	}
}

func TestDialErrorFormatting(t *testing.T) {
	err := &DialError{Stage: DialStageConnect, Addr: "localhost:8087", Err: fmt.Errorf("boom")}
	if !strings.Contains(err.Error(), "gRPC connect localhost:8087") {
		t.Fatalf("Error() = %q", err.Error())
	}
	if err.Unwrap() == nil {
		t.Fatal("expected wrapped error")
	}

	var nilErr *DialError
	if nilErr.Error() == "" || nilErr.Unwrap() != nil {
		t.Fatal("nil DialError should format and unwrap to nil")
	}
}
