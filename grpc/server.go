package clgrpc

import (
	"context"
	"errors"
	"net"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/blockberries/cltypes"
	"github.com/blockberries/cltypes/logging"
)

// Compile-time interface check.
var _ StorageServiceServer = (*GRPCServer)(nil)

// GRPCServer exposes a Store as a gRPC service. Payloads are passed
// through untouched.
type GRPCServer struct {
	store cltypes.Store
	log   *logrus.Entry
}

// NewGRPCServer creates a gRPC server wrapping the given store. A nil
// log discards output.
func NewGRPCServer(store cltypes.Store, log *logrus.Entry) *GRPCServer {
	if log == nil {
		log = logging.Discard()
	}
	return &GRPCServer{store: store, log: log}
}

// Register adds the storage service to a gRPC server.
func (s *GRPCServer) Register(gs *grpc.Server) {
	RegisterStorageServiceServer(gs, s)
}

// Serve starts the gRPC server on the given listener.
func (s *GRPCServer) Serve(lis net.Listener, opts ...grpc.ServerOption) error {
	gs := grpc.NewServer(opts...)
	s.Register(gs)
	s.log.WithField("addr", lis.Addr().String()).Info("serving storage service")
	return gs.Serve(lis)
}

// Store returns the underlying store.
func (s *GRPCServer) Store() cltypes.Store {
	return s.store
}

func (s *GRPCServer) PutKey(ctx context.Context, req *PutKeyRequest) (*PutKeyResponse, error) {
	if err := s.store.PutKey(ctx, req.Name, req.Value); err != nil {
		s.log.WithError(err).WithField("key", req.Name).Warn("PutKey failed")
		return nil, toStatus(err)
	}
	s.log.WithFields(logrus.Fields{"key": req.Name, "bytes": len(req.Value)}).Debug("PutKey")
	return &PutKeyResponse{}, nil
}

func (s *GRPCServer) GetKey(ctx context.Context, req *GetKeyRequest) (*GetKeyResponse, error) {
	value, err := s.store.GetKey(ctx, req.Name)
	if err != nil {
		if !errors.Is(err, cltypes.ErrKeyNotFound) {
			s.log.WithError(err).WithField("key", req.Name).Warn("GetKey failed")
		}
		return nil, toStatus(err)
	}
	s.log.WithFields(logrus.Fields{"key": req.Name, "bytes": len(value)}).Debug("GetKey")
	return &GetKeyResponse{Value: value}, nil
}

// toStatus maps store errors onto gRPC status codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, cltypes.ErrKeyNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
