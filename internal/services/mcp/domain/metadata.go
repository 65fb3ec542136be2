package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/grpc/metadata"

	"github.com/progressions/shot-client-next-sub002/internal/platform/id"
	grpcmeta "github.com/progressions/shot-client-next-sub002/internal/services/chase/api/grpc/metadata"
)

// Correlation headers sent with every ChaseService call.
const (
	RequestIDHeader    = grpcmeta.RequestIDHeader
	InvocationIDHeader = grpcmeta.InvocationIDHeader
)

// ToolCallMetadata carries correlation identifiers for MCP tool calls.
type ToolCallMetadata struct {
	RequestID    string
	InvocationID string
}

// NewInvocationID generates an invocation identifier for a tool call.
func NewInvocationID() (string, error) {
	return id.NewID()
}

// NewOutgoingContext attaches request metadata to a context.
func NewOutgoingContext(ctx context.Context, invocationID string) (context.Context, ToolCallMetadata, error) {
	requestID, err := id.NewID()
	if err != nil {
		return nil, ToolCallMetadata{}, err
	}

	callCtx := metadata.AppendToOutgoingContext(ctx, RequestIDHeader, requestID)
	if invocationID != "" {
		callCtx = metadata.AppendToOutgoingContext(callCtx, InvocationIDHeader, invocationID)
	}
	return callCtx, ToolCallMetadata{RequestID: requestID, InvocationID: invocationID}, nil
}

// CallToolResultWithMetadata builds a tool result with correlation metadata.
func CallToolResultWithMetadata(meta ToolCallMetadata) *mcp.CallToolResult {
	result := &mcp.CallToolResult{
		Meta: map[string]any{
			RequestIDHeader: meta.RequestID,
		},
	}
	if meta.InvocationID != "" {
		result.Meta[InvocationIDHeader] = meta.InvocationID
	}
	return result
}
