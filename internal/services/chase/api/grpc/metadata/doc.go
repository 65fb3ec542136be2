// Package metadata defines the correlation headers carried on ChaseService
// calls.
//
// Callers such as the MCP bridge send a request ID and, per tool call, an
// invocation ID. The server interceptor stores both in the handler context,
// tags the active span with them and echoes them back as response headers.
package metadata
