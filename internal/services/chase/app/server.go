// Package server wires the chase runtime and gRPC lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/progressions/shot-client-next-sub002/internal/platform/config"
	chaseservice "github.com/progressions/shot-client-next-sub002/internal/services/chase/api/grpc/chase"
	grpcmeta "github.com/progressions/shot-client-next-sub002/internal/services/chase/api/grpc/metadata"
	"github.com/progressions/shot-client-next-sub002/internal/systems/fengshui/vehicle"
)

type serverEnv struct {
	RosterPath string `env:"CHASE_ROSTER_PATH"`
}

func loadServerEnv() serverEnv {
	var cfg serverEnv
	_ = config.ParseEnv(&cfg)
	cfg.RosterPath = strings.TrimSpace(cfg.RosterPath)
	return cfg
}

// Options configures a server. Zero values fall back to the environment.
type Options struct {
	// RosterPath is a YAML roster to preload; empty starts with no vehicles.
	RosterPath string
}

// Server hosts the chase gRPC API.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	roster     *vehicle.Roster
}

// New creates a chase server listening on port.
func New(port int) (*Server, error) {
	return NewWithAddr(fmt.Sprintf(":%d", port))
}

// NewWithAddr creates a chase server for addr, reading CHASE_ROSTER_PATH.
func NewWithAddr(addr string) (*Server, error) {
	return NewWithOptions(addr, Options{RosterPath: loadServerEnv().RosterPath})
}

// NewWithOptions creates a chase server for addr.
func NewWithOptions(addr string, options Options) (*Server, error) {
	roster, err := openRoster(options.RosterPath)
	if err != nil {
		return nil, err
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	return newServer(listener, roster), nil
}

func newServer(listener net.Listener, roster *vehicle.Roster) *Server {
	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(grpcmeta.UnaryServerInterceptor(nil)),
	)
	healthServer := health.NewServer()
	chaseservice.RegisterChaseServiceServer(grpcServer, chaseservice.NewService(roster))
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(chaseservice.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		roster:     roster,
	}
}

// Addr returns the listener address.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates a server on addr and serves until ctx ends.
func Run(ctx context.Context, addr string, options Options) error {
	server, err := NewWithOptions(addr, options)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve serves gRPC until ctx ends, then stops gracefully.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("chase server listening at %v with %d vehicles", s.listener.Addr(), s.roster.Len())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		s.health.Shutdown()
		s.grpcServer.GracefulStop()
		return serveResult(<-serveErr)
	case err := <-serveErr:
		return serveResult(err)
	}
}

func serveResult(err error) error {
	if err == nil || errors.Is(err, grpc.ErrServerStopped) {
		return nil
	}
	return fmt.Errorf("serve gRPC: %w", err)
}

// Close releases server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
}

func openRoster(path string) (*vehicle.Roster, error) {
	if path == "" {
		return vehicle.NewRoster()
	}
	roster, err := vehicle.LoadRosterFile(path)
	if err != nil {
		return nil, fmt.Errorf("load roster %s: %w", path, err)
	}
	log.Printf("loaded %d vehicles from %s", roster.Len(), path)
	return roster, nil
}
