package grpc

import (
	"context"
	"fmt"
	"time"

	gogrpc "google.golang.org/grpc"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

var (
	initialBackoff = 200 * time.Millisecond
	maxBackoff     = time.Second
)

// WaitForHealth polls the health service until service reports SERVING or
// ctx ends. The poll interval doubles up to a second.
func WaitForHealth(ctx context.Context, conn *gogrpc.ClientConn, service string, logf func(string, ...any)) error {
	if conn == nil {
		return fmt.Errorf("gRPC connection is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if logf == nil {
		logf = func(string, ...any) {}
	}

	client := grpc_health_v1.NewHealthClient(conn)
	backoff := initialBackoff
	for {
		status, err := check(ctx, client, service)
		if err == nil && status == grpc_health_v1.HealthCheckResponse_SERVING {
			logf("gRPC health for %q is SERVING", service)
			return nil
		}
		if err != nil {
			logf("waiting for gRPC health: %v", err)
		} else {
			logf("waiting for gRPC health: status %s", status)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for gRPC health: %w", ctx.Err())
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, maxBackoff)
	}
}

func check(ctx context.Context, client grpc_health_v1.HealthClient, service string) (grpc_health_v1.HealthCheckResponse_ServingStatus, error) {
	callCtx, cancel := context.WithTimeout(ctx, maxBackoff)
	defer cancel()
	response, err := client.Check(callCtx, &grpc_health_v1.HealthCheckRequest{Service: service})
	if err != nil {
		return grpc_health_v1.HealthCheckResponse_UNKNOWN, err
	}
	return response.GetStatus(), nil
}
