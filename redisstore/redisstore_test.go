package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockberries/cltypes"
	cltest "github.com/blockberries/cltypes/testing"
)

// newRedisClient returns a client connected to a fresh in-memory
// server that is shut down when the test ends.
func newRedisClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	server := miniredis.RunT(t)
	rsClient := redis.NewClient(&redis.Options{
		Addr: server.Addr(),
	})
	t.Cleanup(func() { rsClient.Close() })
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, rsClient.Ping(ctx).Err(), "failed to connect to redis")
	return rsClient, server
}

func TestRedisStore_Compliance(t *testing.T) {
	cltest.RunComplianceSuite(t, func(t *testing.T) cltypes.Store {
		rsClient, _ := newRedisClient(t)
		return New(rsClient)
	})
}

func TestRedisStore_Prefix(t *testing.T) {
	rsClient, server := newRedisClient(t)
	s := New(rsClient, WithPrefix("contract:"))

	require.NoError(t, s.PutKey(context.Background(), "mem1", []byte{0x00, 0x01, 0x7B}))

	raw, err := server.Get("contract:mem1")
	require.NoError(t, err)
	assert.Equal(t, string([]byte{0x00, 0x01, 0x7B}), raw)
	assert.False(t, server.Exists("mem1"))
}

func TestRedisStore_DefaultPrefix(t *testing.T) {
	rsClient, server := newRedisClient(t)
	s := New(rsClient)

	require.NoError(t, s.PutKey(context.Background(), "test", []byte("x")))
	assert.True(t, server.Exists(DefaultPrefix+"test"))
}

func TestRedisStore_NotFound(t *testing.T) {
	rsClient, _ := newRedisClient(t)
	s := New(rsClient)

	_, err := s.GetKey(context.Background(), "absent")
	assert.ErrorIs(t, err, cltypes.ErrKeyNotFound)
}

func TestRedisStore_ServerDown(t *testing.T) {
	rsClient, server := newRedisClient(t)
	s := New(rsClient)
	server.Close()

	err := s.PutKey(context.Background(), "k", []byte{1})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, cltypes.ErrKeyNotFound)
}

func TestDial(t *testing.T) {
	server := miniredis.RunT(t)
	s, err := Dial(context.Background(), server.Addr(), 0)
	require.NoError(t, err)

	require.NoError(t, s.PutKey(context.Background(), "k", []byte{7}))
	got, err := s.GetKey(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, []byte{7}, got)
	assert.NoError(t, s.Close())
}

func TestDial_Unreachable(t *testing.T) {
	server := miniredis.RunT(t)
	addr := server.Addr()
	server.Close()

	_, err := Dial(context.Background(), addr, 0)
	assert.Error(t, err)
}
