package clgrpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
)

const serviceName = "github.com/blockberries/cltypes.v1.StorageService"

// StorageServiceServer is the server-side interface for the storage
// gRPC service.
type StorageServiceServer interface {
	PutKey(context.Context, *PutKeyRequest) (*PutKeyResponse, error)
	GetKey(context.Context, *GetKeyRequest) (*GetKeyResponse, error)
}

// RegisterStorageServiceServer registers the StorageServiceServer on a
// gRPC server.
func RegisterStorageServiceServer(s *grpc.Server, srv StorageServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

// --- Handler functions ---

func handlerPutKey(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	req := new(PutKeyRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StorageServiceServer).PutKey(ctx, req)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod("PutKey")}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StorageServiceServer).PutKey(ctx, req.(*PutKeyRequest))
	}
	return interceptor(ctx, req, info, handler)
}

func handlerGetKey(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	req := new(GetKeyRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StorageServiceServer).GetKey(ctx, req)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod("GetKey")}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StorageServiceServer).GetKey(ctx, req.(*GetKeyRequest))
	}
	return interceptor(ctx, req, info, handler)
}

// fullMethod builds the full gRPC method path.
func fullMethod(method string) string {
	return fmt.Sprintf("/%s/%s", serviceName, method)
}

// serviceDesc is the manual gRPC service descriptor for the storage
// service.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*StorageServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "PutKey", Handler: handlerPutKey},
		{MethodName: "GetKey", Handler: handlerGetKey},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "github.com/blockberries/cltypes/v1/storage.cram",
}
