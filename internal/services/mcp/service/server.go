package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/grpc"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/progressions/shot-client-next-sub002/internal/platform/config"
	platformgrpc "github.com/progressions/shot-client-next-sub002/internal/platform/grpc"
	"github.com/progressions/shot-client-next-sub002/internal/platform/timeouts"
	chaseservice "github.com/progressions/shot-client-next-sub002/internal/services/chase/api/grpc/chase"
	"github.com/progressions/shot-client-next-sub002/internal/services/mcp/domain"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "Chase MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// Config configures the MCP server.
type Config struct {
	// GRPCAddr is the ChaseService address; empty falls back to CHASE_GRPC_ADDR.
	GRPCAddr string
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
	conn      *grpc.ClientConn
	closeOnce sync.Once
	closeErr  error
}

// New connects to ChaseService at grpcAddr and registers the chase tools.
func New(ctx context.Context, grpcAddr string) (*Server, error) {
	addr := grpcAddress(grpcAddr)
	conn, err := dialChaseGRPC(ctx, addr)
	if err != nil {
		return nil, err
	}
	return newServer(conn), nil
}

// newServer registers the tool handlers once against conn.
func newServer(conn *grpc.ClientConn) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	registerChaseTools(mcpServer, chaseservice.NewClient(conn))
	return &Server{mcpServer: mcpServer, conn: conn}
}

func registerChaseTools(server *mcp.Server, client domain.ChaseClient) {
	mcp.AddTool(server, domain.ChaseResolveTool(), domain.ChaseResolveHandler(client))
	mcp.AddTool(server, domain.ChaseSwerveTool(), domain.ChaseSwerveHandler(client))
}

// Run serves MCP over stdio and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return runWithTransport(ctx, cfg.GRPCAddr, &mcp.StdioTransport{})
}

// runWithTransport creates a server and serves it over transport.
func runWithTransport(ctx context.Context, grpcAddr string, transport mcp.Transport) error {
	server, err := New(ctx, grpcAddr)
	if err != nil {
		return err
	}
	healthCtx, healthCancel := context.WithCancel(ctx)
	defer healthCancel()
	go server.monitorHealth(healthCtx, timeouts.HealthInterval)
	return server.serveWithTransport(ctx, transport)
}

// Serve starts the MCP server on stdio and blocks until it stops or ctx ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport runs the MCP server and closes the gRPC connection on
// every exit path.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	closeErr := s.Close()
	if closeErr != nil {
		if err == nil {
			return fmt.Errorf("close gRPC connection: %w", closeErr)
		}
		return fmt.Errorf("serve MCP: %v; close gRPC connection: %w", err, closeErr)
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

// Close releases the gRPC connection held by the server.
func (s *Server) Close() error {
	if s == nil || s.conn == nil {
		return nil
	}
	s.closeOnce.Do(func() {
		s.closeErr = s.conn.Close()
	})
	return s.closeErr
}

// monitorHealth logs when ChaseService stops reporting SERVING. Tool calls
// keep failing on their own; the server stays up.
func (s *Server) monitorHealth(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if s.conn == nil {
				log.Printf("gRPC connection is nil, health check skipped")
				continue
			}
			healthClient := grpc_health_v1.NewHealthClient(s.conn)
			callCtx, cancel := context.WithTimeout(ctx, timeouts.HealthCheck)
			response, err := healthClient.Check(callCtx, &grpc_health_v1.HealthCheckRequest{Service: chaseservice.ServiceName})
			cancel()
			if err != nil {
				log.Printf("chase health check failed: %v", err)
			} else if response.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
				log.Printf("chase health check status: %s", response.GetStatus())
			}
		}
	}
}

func dialChaseGRPC(ctx context.Context, addr string) (*grpc.ClientConn, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, fmt.Errorf("chase gRPC address is required")
	}
	conn, err := platformgrpc.Dial(ctx, addr, platformgrpc.DialOptions{
		Timeout: timeouts.GRPCDial,
		Service: chaseservice.ServiceName,
		Logf: func(format string, args ...any) {
			log.Printf("chase %s", fmt.Sprintf(format, args...))
		},
	})
	if err != nil {
		var dialErr *platformgrpc.DialError
		if errors.As(err, &dialErr) && dialErr.Stage == platformgrpc.DialStageConnect {
			return nil, fmt.Errorf("connect to chase server at %s: %w", addr, dialErr.Err)
		}
		return nil, err
	}
	return conn, nil
}

type grpcEnv struct {
	Addr string `env:"CHASE_GRPC_ADDR"`
}

// grpcAddress returns fallback, or CHASE_GRPC_ADDR when fallback is empty.
func grpcAddress(fallback string) string {
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	var cfg grpcEnv
	if err := config.ParseEnv(&cfg); err == nil {
		if value := strings.TrimSpace(cfg.Addr); value != "" {
			return value
		}
	}
	return fallback
}
