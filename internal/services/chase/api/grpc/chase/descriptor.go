package chase

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "chase.v1.ChaseService"

const (
	ResolveMethod = "/" + ServiceName + "/Resolve"
	SwerveMethod  = "/" + ServiceName + "/Swerve"
)

// ChaseServiceServer is the server API for ChaseService. Messages are
// protobuf Structs; the field layout is documented on Service.
type ChaseServiceServer interface {
	Resolve(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Swerve(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterChaseServiceServer registers srv on s.
func RegisterChaseServiceServer(s grpc.ServiceRegistrar, srv ChaseServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// ServiceDesc describes ChaseService for grpc.Server.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ChaseServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Resolve", Handler: resolveHandler},
		{MethodName: "Swerve", Handler: swerveHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "chase/v1/chase.proto",
}

func resolveHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChaseServiceServer).Resolve(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ResolveMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChaseServiceServer).Resolve(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func swerveHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChaseServiceServer).Swerve(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SwerveMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChaseServiceServer).Swerve(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}
