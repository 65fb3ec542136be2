package chase

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client calls ChaseService over conn.
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient returns a ChaseService client.
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// Resolve resolves one attack.
func (c *Client) Resolve(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, ResolveMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Swerve rolls a swerve.
func (c *Client) Swerve(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, SwerveMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ResolveMap is Resolve for plain maps, as decoded from JSON.
func (c *Client) ResolveMap(ctx context.Context, in map[string]any) (map[string]any, error) {
	return c.callMap(ctx, in, c.Resolve)
}

// SwerveMap is Swerve for plain maps, as decoded from JSON.
func (c *Client) SwerveMap(ctx context.Context, in map[string]any) (map[string]any, error) {
	return c.callMap(ctx, in, c.Swerve)
}

func (c *Client) callMap(ctx context.Context, in map[string]any, call func(context.Context, *structpb.Struct, ...grpc.CallOption) (*structpb.Struct, error)) (map[string]any, error) {
	if in == nil {
		in = map[string]any{}
	}
	req, err := structpb.NewStruct(in)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	resp, err := call(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.AsMap(), nil
}
