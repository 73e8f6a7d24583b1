// Package config loads the storage configuration for a contract host.
//
// Configuration is a single YAML file naming one backend and its
// settings. There is no discovery and no environment overlay: the file
// passed to Load is the whole configuration.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"gopkg.in/yaml.v3"

	"github.com/blockberries/cltypes"
	clgrpc "github.com/blockberries/cltypes/grpc"
	"github.com/blockberries/cltypes/local"
	"github.com/blockberries/cltypes/logging"
	"github.com/blockberries/cltypes/redisstore"
)

// Backend selects the Store implementation.
type Backend string

const (
	// BackendLocal keeps values in process memory.
	BackendLocal Backend = "local"
	// BackendRedis stores values in Redis.
	BackendRedis Backend = "redis"
	// BackendGRPC forwards to a remote storage service.
	BackendGRPC Backend = "grpc"
)

// Config is the storage configuration.
type Config struct {
	// Backend names the store to open.
	Backend Backend `yaml:"backend"`

	// Redis configures BackendRedis.
	Redis RedisConfig `yaml:"redis"`

	// GRPC configures BackendGRPC.
	GRPC GRPCConfig `yaml:"grpc"`

	// Log configures the adapters' logger.
	Log LogConfig `yaml:"log"`
}

// RedisConfig configures the Redis backend.
type RedisConfig struct {
	Addr   string `yaml:"addr"`
	DB     int    `yaml:"db"`
	Prefix string `yaml:"prefix"`
}

// GRPCConfig configures the remote backend.
type GRPCConfig struct {
	// Target is the dial address of the storage service.
	Target string `yaml:"target"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Default returns a configuration using the in-process store.
func Default() *Config {
	return &Config{
		Backend: BackendLocal,
		Redis:   RedisConfig{Addr: "127.0.0.1:6379", Prefix: redisstore.DefaultPrefix},
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the selected backend has what it needs.
func (c *Config) Validate() error {
	var errs []error
	switch c.Backend {
	case BackendLocal:
	case BackendRedis:
		if c.Redis.Addr == "" {
			errs = append(errs, errors.New("redis.addr is required for the redis backend"))
		}
		if c.Redis.DB < 0 {
			errs = append(errs, fmt.Errorf("redis.db must not be negative, got %d", c.Redis.DB))
		}
	case BackendGRPC:
		if c.GRPC.Target == "" {
			errs = append(errs, errors.New("grpc.target is required for the grpc backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown backend %q", c.Backend))
	}
	if c.Log.Level != "" {
		if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
			errs = append(errs, fmt.Errorf("log.level: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Logger builds the logger described by the configuration.
func (c *Config) Logger(scope string) (*logrus.Entry, error) {
	return logging.New(scope, logging.Options{Level: c.Log.Level, JSON: c.Log.JSON})
}

// Open constructs the configured Store. The caller closes it.
func Open(ctx context.Context, cfg *Config) (cltypes.Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log, err := cfg.Logger(string(cfg.Backend))
	if err != nil {
		return nil, err
	}
	switch cfg.Backend {
	case BackendRedis:
		s, err := redisstore.Dial(ctx, cfg.Redis.Addr, cfg.Redis.DB,
			redisstore.WithPrefix(cfg.Redis.Prefix),
			redisstore.WithLogger(log),
		)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendGRPC:
		c, err := clgrpc.Dial(ctx, cfg.GRPC.Target,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		log.Debug("using in-process store")
		return local.NewStore(), nil
	}
}
