// Package timeouts defines shared timeout constants used across the chase
// commands so client and server limits do not drift apart.
package timeouts

import "time"

// GRPCDial caps connecting to a gRPC peer and waiting for it to report
// SERVING.
const GRPCDial = 10 * time.Second

// GRPCRequest caps a single ChaseService call made on behalf of an MCP tool.
const GRPCRequest = 5 * time.Second

// HealthCheck caps one health probe of a connected peer.
const HealthCheck = 5 * time.Second

// HealthInterval is how often a long-lived client re-probes its peer.
const HealthInterval = 30 * time.Second

// Shutdown limits how long telemetry gets to flush on exit.
const Shutdown = 5 * time.Second
