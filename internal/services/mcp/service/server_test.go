package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	chaseapp "github.com/progressions/shot-client-next-sub002/internal/services/chase/app"
)

func startChaseServer(t *testing.T) string {
	t.Helper()

	srv, err := chaseapp.NewWithOptions("127.0.0.1:0", chaseapp.Options{})
	if err != nil {
		t.Fatalf("new chase server: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	serveDone := make(chan error, 1)
	go func() {
		serveDone <- srv.Serve(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		select {
		case <-serveDone:
		case <-time.After(2 * time.Second):
			t.Error("chase server did not stop")
		}
	})
	return srv.Addr()
}

func connectClient(t *testing.T, transport mcp.Transport) *mcp.ClientSession {
	t.Helper()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		t.Fatalf("connect client: %v", err)
	}
	return session
}

func structured(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()
	if result.IsError {
		t.Fatalf("tool error: %+v", result.Content)
	}
	out, ok := result.StructuredContent.(map[string]any)
	if !ok {
		t.Fatalf("structured content = %#v", result.StructuredContent)
	}
	return out
}

// TestRunWithTransportServesChaseTools ensures the MCP tools reach a live ChaseService.
func TestRunWithTransportServesChaseTools(t *testing.T) {
	addr := startChaseServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- runWithTransport(ctx, addr, serverTransport)
	}()

	session := connectClient(t, clientTransport)
	callCtx, callCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer callCancel()

	tools, err := session.ListTools(callCtx, nil)
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}
	names := map[string]bool{}
	for _, tool := range tools.Tools {
		names[tool.Name] = true
	}
	if !names["chase_resolve"] || !names["chase_swerve"] {
		t.Fatalf("tools = %v", names)
	}

	swerve, err := session.CallTool(callCtx, &mcp.CallToolParams{
		Name:      "chase_swerve",
		Arguments: map[string]any{"seed": 42, "action_value": 15, "defense": 13},
	})
	if err != nil {
		t.Fatalf("call chase_swerve: %v", err)
	}
	swerveOut := structured(t, swerve)
	rng, _ := swerveOut["rng"].(map[string]any)
	if rng["seed_used"] != "42" || rng["seed_source"] != "CLIENT" {
		t.Errorf("rng = %v", rng)
	}
	if _, ok := swerveOut["outcome"].(map[string]any); !ok {
		t.Errorf("outcome missing: %v", swerveOut)
	}

	resolve, err := session.CallTool(callCtx, &mcp.CallToolParams{
		Name: "chase_resolve",
		Arguments: map[string]any{
			"attacker": map[string]any{
				"id":            "cruiser",
				"name":          "Police Cruiser",
				"type":          "Featured Foe",
				"action_values": map[string]any{"Driving": 15, "Squeal": 8, "Pursuer": true},
			},
			"target": map[string]any{
				"id":            "getaway",
				"name":          "Getaway Car",
				"type":          "PC",
				"action_values": map[string]any{"Driving": 13, "Handling": 6},
			},
			"swerve": 6,
		},
	})
	if err != nil {
		t.Fatalf("call chase_resolve: %v", err)
	}
	resolveOut := structured(t, resolve)
	if resolveOut["position"] != "near" || resolveOut["success"] != true {
		t.Errorf("resolve = %v", resolveOut)
	}
	want := "Police Cruiser narrows the gap on Getaway Car for 10 chase points (smackdown 16)."
	if resolveOut["summary"] != want {
		t.Errorf("summary = %v, want %q", resolveOut["summary"], want)
	}

	missing, err := session.CallTool(callCtx, &mcp.CallToolParams{
		Name:      "chase_resolve",
		Arguments: map[string]any{"attacker_id": "ghost", "target_id": "getaway"},
	})
	if err != nil {
		t.Fatalf("call chase_resolve: %v", err)
	}
	if !missing.IsError {
		t.Fatalf("expected tool error for unknown vehicle, got %+v", missing.StructuredContent)
	}

	_ = session.Close()
	cancel()
	select {
	case err := <-serveErr:
		if err != nil {
			t.Fatalf("run returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("run did not stop after cancel")
	}
}

// TestRunRequiresAddress ensures Run fails fast without a ChaseService address.
func TestRunRequiresAddress(t *testing.T) {
	t.Setenv("CHASE_GRPC_ADDR", "")
	err := Run(context.Background(), Config{})
	if err == nil || !strings.Contains(err.Error(), "address is required") {
		t.Fatalf("error = %v", err)
	}
}

func TestGRPCAddress(t *testing.T) {
	t.Setenv("CHASE_GRPC_ADDR", "chase:8080")
	if got := grpcAddress(""); got != "chase:8080" {
		t.Errorf("grpcAddress(\"\") = %q, want chase:8080", got)
	}
	if got := grpcAddress("localhost:9000"); got != "localhost:9000" {
		t.Errorf("grpcAddress(explicit) = %q, want localhost:9000", got)
	}
}

// TestMonitorHealthExitsOnCancel ensures monitorHealth returns when the context ends.
func TestMonitorHealthExitsOnCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	server := &Server{}
	done := make(chan struct{})
	go func() {
		server.monitorHealth(ctx, 10*time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("monitorHealth did not exit after context timeout")
	}
}

func TestServeWithTransportUnconfigured(t *testing.T) {
	var server *Server
	if err := server.serveWithTransport(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil server")
	}
	if err := server.Close(); err != nil {
		t.Fatalf("close nil server: %v", err)
	}
}
