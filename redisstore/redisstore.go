// Package redisstore provides a Store backed by Redis.
//
// Each named key maps to one Redis string under a configurable
// prefix, written with SET so a put always replaces the whole value.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/blockberries/cltypes"
	"github.com/blockberries/cltypes/logging"
)

// Compile-time interface check.
var _ cltypes.Store = (*Store)(nil)

// DefaultPrefix namespaces contract keys within a shared Redis.
const DefaultPrefix = "cltypes:"

// Store is a Redis-backed named-key store. It is safe for concurrent
// use.
type Store struct {
	rsClient *redis.Client
	prefix   string
	log      *logrus.Entry
	owned    bool
}

// Option configures a Store.
type Option func(*Store)

// WithPrefix sets the key prefix. An empty prefix stores names as-is.
func WithPrefix(prefix string) Option {
	return func(s *Store) { s.prefix = prefix }
}

// WithLogger sets the logger.
func WithLogger(log *logrus.Entry) Option {
	return func(s *Store) { s.log = log }
}

// New wraps an existing client. Close does not close a client passed
// in this way.
func New(rsClient *redis.Client, opts ...Option) *Store {
	s := &Store{
		rsClient: rsClient,
		prefix:   DefaultPrefix,
		log:      logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dial connects to the Redis server at addr, verifies it with a PING
// and returns a Store that owns the connection.
func Dial(ctx context.Context, addr string, db int, opts ...Option) (*Store, error) {
	rsClient := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rsClient.Ping(pingCtx).Err(); err != nil {
		rsClient.Close()
		return nil, fmt.Errorf("redisstore: dial %s: %w", addr, err)
	}
	s := New(rsClient, opts...)
	s.owned = true
	return s, nil
}

// Client returns the underlying Redis client.
func (s *Store) Client() *redis.Client {
	return s.rsClient
}

func (s *Store) redisKey(name string) string {
	return s.prefix + name
}

func (s *Store) PutKey(ctx context.Context, name string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("redisstore: %w", err)
	}
	key := s.redisKey(name)
	if err := s.rsClient.Set(ctx, key, value, 0).Err(); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("put failed")
		return fmt.Errorf("redisstore: failed to write key '%s': %w", key, err)
	}
	s.log.WithFields(logrus.Fields{"key": key, "bytes": len(value)}).Debug("put")
	return nil
}

func (s *Store) GetKey(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("redisstore: %w", err)
	}
	key := s.redisKey(name)
	data, err := s.rsClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, cltypes.ErrKeyNotFound
		}
		s.log.WithError(err).WithField("key", key).Warn("get failed")
		return nil, fmt.Errorf("redisstore: %w", err)
	}
	s.log.WithFields(logrus.Fields{"key": key, "bytes": len(data)}).Debug("get")
	return data, nil
}

// Close closes the connection if the Store created it.
func (s *Store) Close() error {
	if !s.owned {
		return nil
	}
	return s.rsClient.Close()
}
