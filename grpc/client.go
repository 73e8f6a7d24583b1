package clgrpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/blockberries/cltypes"
)

// Compile-time interface check.
var _ cltypes.Store = (*Client)(nil)

// Client implements cltypes.Store for a remote storage service over
// gRPC using cramberry serialization.
type Client struct {
	cc *grpc.ClientConn
}

// Dial connects to a remote storage service.
func Dial(ctx context.Context, addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append(opts, grpc.WithDefaultCallOptions(
		grpc.ForceCodec(CramberryCodec{}),
	))
	cc, err := grpc.DialContext(ctx, addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("clgrpc client: dial %s: %w", addr, err)
	}
	return &Client{cc: cc}, nil
}

func (c *Client) Close() error {
	return c.cc.Close()
}

func (c *Client) PutKey(ctx context.Context, name string, value []byte) error {
	req := &PutKeyRequest{Name: name, Value: value}
	if err := c.cc.Invoke(ctx, fullMethod("PutKey"), req, new(PutKeyResponse)); err != nil {
		return fromStatus(err)
	}
	return nil
}

func (c *Client) GetKey(ctx context.Context, name string) ([]byte, error) {
	resp := new(GetKeyResponse)
	if err := c.cc.Invoke(ctx, fullMethod("GetKey"), &GetKeyRequest{Name: name}, resp); err != nil {
		return nil, fromStatus(err)
	}
	if resp.Value == nil {
		return []byte{}, nil
	}
	return resp.Value, nil
}

// fromStatus reverses toStatus so callers see the same errors as with
// a local store.
func fromStatus(err error) error {
	switch status.Code(err) {
	case codes.NotFound:
		return cltypes.ErrKeyNotFound
	case codes.Canceled:
		return fmt.Errorf("clgrpc client: %w: %w", context.Canceled, err)
	case codes.DeadlineExceeded:
		return fmt.Errorf("clgrpc client: %w: %w", context.DeadlineExceeded, err)
	}
	return fmt.Errorf("clgrpc client: %w", err)
}
