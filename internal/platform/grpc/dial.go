// Package grpc holds client helpers for reaching the chase gRPC service.
package grpc

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// DialStage names the step of Dial that failed.
type DialStage string

const (
	DialStageConnect DialStage = "connect"
	DialStageHealth  DialStage = "health"
)

// DialError reports a failed Dial with the stage it failed at.
type DialError struct {
	Stage DialStage
	Addr  string
	Err   error
}

func (e *DialError) Error() string {
	if e == nil {
		return "gRPC dial error"
	}
	return fmt.Sprintf("gRPC %s %s: %v", e.Stage, e.Addr, e.Err)
}

func (e *DialError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DialOptions configures Dial.
type DialOptions struct {
	// Timeout bounds connecting and the health wait together.
	Timeout time.Duration
	// Service is the health service name to wait on; empty means the server.
	Service string
	// Logf receives health wait progress.
	Logf func(string, ...any)
	// Extra is appended to ClientDialOptions.
	Extra []gogrpc.DialOption
}

// ClientDialOptions returns the options every chase client dials with:
// plaintext transport and trace propagation.
func ClientDialOptions() []gogrpc.DialOption {
	return []gogrpc.DialOption{
		gogrpc.WithTransportCredentials(insecure.NewCredentials()),
		gogrpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	}
}

// Dial connects to addr and waits until its health check reports SERVING.
// The connection is closed if the wait fails.
func Dial(ctx context.Context, addr string, options DialOptions) (*gogrpc.ClientConn, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	dialOptions := append(ClientDialOptions(), options.Extra...)
	conn, err := gogrpc.NewClient(addr, dialOptions...)
	if err != nil {
		return nil, &DialError{Stage: DialStageConnect, Addr: addr, Err: err}
	}

	waitCtx := ctx
	if options.Timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, options.Timeout)
		defer cancel()
	}
	if err := WaitForHealth(waitCtx, conn, options.Service, options.Logf); err != nil {
		_ = conn.Close()
		return nil, &DialError{Stage: DialStageHealth, Addr: addr, Err: err}
	}
	return conn, nil
}
