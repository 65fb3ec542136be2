package metadata

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/progressions/shot-client-next-sub002/internal/platform/id"
)

// RequestIDHeader is the gRPC metadata key for request correlation IDs.
const RequestIDHeader = "x-chase-request-id"

// InvocationIDHeader is the gRPC metadata key for MCP tool invocation IDs.
const InvocationIDHeader = "x-chase-invocation-id"

// Span attribute keys for the correlation IDs.
const (
	RequestIDAttribute    = attribute.Key("chase.request_id")
	InvocationIDAttribute = attribute.Key("chase.invocation_id")
)

type contextKey string

const (
	requestIDContextKey    contextKey = "chase-request-id"
	invocationIDContextKey contextKey = "chase-invocation-id"
)

// RequestIDFromContext returns the request ID stored in context.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(requestIDContextKey).(string)
	return value
}

// InvocationIDFromContext returns the invocation ID stored in context.
func InvocationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(invocationIDContextKey).(string)
	return value
}

// WithRequestID stores the request ID in context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, requestIDContextKey, requestID)
}

// WithInvocationID stores the invocation ID in context.
func WithInvocationID(ctx context.Context, invocationID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, invocationIDContextKey, invocationID)
}

// IsPrintableASCII reports whether value is non-empty printable ASCII.
func IsPrintableASCII(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < 0x20 || value[i] > 0x7e {
			return false
		}
	}
	return true
}

// FirstMetadataValue returns the first printable ASCII value for key.
func FirstMetadataValue(md metadata.MD, key string) string {
	for mdKey, values := range md {
		if !strings.EqualFold(mdKey, key) {
			continue
		}
		for _, value := range values {
			if IsPrintableASCII(value) {
				return value
			}
		}
	}
	return ""
}

// SpanAttributes returns the correlation IDs in ctx as span attributes.
func SpanAttributes(ctx context.Context) []attribute.KeyValue {
	attrs := []attribute.KeyValue{RequestIDAttribute.String(RequestIDFromContext(ctx))}
	if invocationID := InvocationIDFromContext(ctx); invocationID != "" {
		attrs = append(attrs, InvocationIDAttribute.String(invocationID))
	}
	return attrs
}

// UnaryServerInterceptor gives every unary call a request ID, generating one
// when the caller sent none. The IDs land in the handler context, on the
// current span and in the response headers.
func UnaryServerInterceptor(idGenerator func() (string, error)) grpc.UnaryServerInterceptor {
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		updatedCtx, requestID, invocationID, err := ensureRequestMetadata(ctx, idGenerator)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "ensure request metadata: %v", err)
		}
		if err := grpc.SetHeader(updatedCtx, responseHeaders(requestID, invocationID)); err != nil {
			return nil, status.Errorf(codes.Internal, "set response metadata: %v", err)
		}
		trace.SpanFromContext(updatedCtx).SetAttributes(SpanAttributes(updatedCtx)...)
		return handler(updatedCtx, req)
	}
}

func ensureRequestMetadata(ctx context.Context, idGenerator func() (string, error)) (context.Context, string, string, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	requestID := FirstMetadataValue(md, RequestIDHeader)
	invocationID := FirstMetadataValue(md, InvocationIDHeader)
	if requestID == "" {
		generatedID, err := idGenerator()
		if err != nil {
			return nil, "", "", err
		}
		requestID = generatedID
	}

	updatedCtx := WithRequestID(ctx, requestID)
	if invocationID != "" {
		updatedCtx = WithInvocationID(updatedCtx, invocationID)
	}
	return updatedCtx, requestID, invocationID, nil
}

func responseHeaders(requestID, invocationID string) metadata.MD {
	headers := metadata.Pairs(RequestIDHeader, requestID)
	if invocationID != "" {
		headers.Append(InvocationIDHeader, invocationID)
	}
	return headers
}
