package cache

import (
	"context"
	"fmt"

	"github.com/contentforge/backend/internal/domain/shared"
	"github.com/contentforge/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// IdempotencyStoreFactory picks an idempotency store from configuration
type IdempotencyStoreFactory struct {
	redisConfig   config.RedisConfig
	logger        *zap.Logger
	allowFallback bool
	client        redis.UniversalClient
}

// FactoryOption configures the factory
type FactoryOption func(*IdempotencyStoreFactory)

// WithLogger sets the factory logger
func WithLogger(logger *zap.Logger) FactoryOption {
	return func(f *IdempotencyStoreFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether an unreachable Redis degrades to
// the in-process store. Fallback is on by default.
func WithInMemoryFallback(allow bool) FactoryOption {
	return func(f *IdempotencyStoreFactory) {
		f.allowFallback = allow
	}
}

// WithClient reuses an already connected client instead of dialing
func WithClient(client redis.UniversalClient) FactoryOption {
	return func(f *IdempotencyStoreFactory) {
		f.client = client
	}
}

// NewIdempotencyStoreFactory creates a factory
func NewIdempotencyStoreFactory(cfg config.RedisConfig, opts ...FactoryOption) *IdempotencyStoreFactory {
	f := &IdempotencyStoreFactory{
		redisConfig:   cfg,
		logger:        zap.NewNop(),
		allowFallback: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateStore returns a Redis store when Redis is enabled and reachable,
// otherwise the in-memory store if fallback is allowed.
func (f *IdempotencyStoreFactory) CreateStore(ctx context.Context) (shared.IdempotencyStore, error) {
	if !f.redisConfig.Enabled && f.client == nil {
		f.logger.Info("Redis disabled, using in-memory idempotency store")
		return NewInMemoryIdempotencyStore(0), nil
	}

	client := f.client
	if client == nil {
		c, err := NewRedisClient(ctx, f.redisConfig)
		if err != nil {
			if !f.allowFallback {
				return nil, fmt.Errorf("redis required for idempotency but unavailable: %w", err)
			}
			f.logger.Warn("Redis unavailable, falling back to in-memory idempotency store; "+
				"duplicate requests are only detected per instance",
				zap.Error(err))
			return NewInMemoryIdempotencyStore(0), nil
		}
		client = c
	}

	f.logger.Info("Using Redis idempotency store")
	return NewRedisIdempotencyStore(client, ""), nil
}
