package grpcapi

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	SyncServiceName       = "menusync.SyncService"
	TriggerSyncFullMethod = "/menusync.SyncService/TriggerSync"
)

// SyncServiceServer is the server API of menusync.SyncService. Requests and
// responses travel as google.protobuf.Struct.
type SyncServiceServer interface {
	TriggerSync(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

func RegisterSyncServiceServer(s grpc.ServiceRegistrar, srv SyncServiceServer) {
	s.RegisterService(&SyncServiceDesc, srv)
}

func triggerSyncHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncServiceServer).TriggerSync(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TriggerSyncFullMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyncServiceServer).TriggerSync(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var SyncServiceDesc = grpc.ServiceDesc{
	ServiceName: SyncServiceName,
	HandlerType: (*SyncServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "TriggerSync",
			Handler:    triggerSyncHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "menusync/sync.proto",
}

// TriggerSync calls menusync.SyncService/TriggerSync on conn.
func TriggerSync(ctx context.Context, conn grpc.ClientConnInterface, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := conn.Invoke(ctx, TriggerSyncFullMethod, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
