// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package poster

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tomtom215/cinematch/internal/cache"
)

// StoreType selects a poster store driver.
type StoreType string

const (
	StoreTypeMemory StoreType = "memory"
	StoreTypeRedis  StoreType = "redis"
)

// DefaultKeyPrefix namespaces poster keys in a shared Redis.
const DefaultKeyPrefix = "cinematch:poster:"

const defaultStoreTTL = 24 * time.Hour

// Store caches resolved poster URLs by movie id.
type Store interface {
	// Get returns the URL and whether it was present.
	Get(ctx context.Context, movieID int) (string, bool, error)
	Set(ctx context.Context, movieID int, url string) error
	Len() int
	Close() error
}

// StoreOption is a functional option for configuring a poster store.
type StoreOption func(*storeConfig)

type storeConfig struct {
	redisClient *redis.Client
	ttl         time.Duration
	capacity    int
	keyPrefix   string
}

// WithRedisClient sets the Redis client for the Redis store.
func WithRedisClient(client *redis.Client) StoreOption {
	return func(c *storeConfig) {
		c.redisClient = client
	}
}

// WithTTL sets how long a resolved URL is kept.
func WithTTL(ttl time.Duration) StoreOption {
	return func(c *storeConfig) {
		c.ttl = ttl
	}
}

// WithCapacity bounds the memory store.
func WithCapacity(n int) StoreOption {
	return func(c *storeConfig) {
		c.capacity = n
	}
}

// WithKeyPrefix sets the Redis key prefix.
func WithKeyPrefix(prefix string) StoreOption {
	return func(c *storeConfig) {
		c.keyPrefix = prefix
	}
}

// NewStore creates a Store of the given type.
// For Redis, requires WithRedisClient option.
func NewStore(storeType StoreType, opts ...StoreOption) (Store, error) {
	cfg := &storeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	ttl := cfg.ttl
	if ttl <= 0 {
		ttl = defaultStoreTTL
	}

	switch storeType {
	case StoreTypeMemory:
		return &MemoryStore{lru: cache.NewLRU[string](cfg.capacity, ttl)}, nil

	case StoreTypeRedis:
		if cfg.redisClient == nil {
			return nil, ErrInvalidConfig
		}
		prefix := cfg.keyPrefix
		if prefix == "" {
			prefix = DefaultKeyPrefix
		}
		return &redisStore{client: cfg.redisClient, ttl: ttl, prefix: prefix}, nil

	default:
		return nil, ErrInvalidStoreType
	}
}

// MemoryStore keeps URLs in a process-local LRU.
type MemoryStore struct {
	lru *cache.LRU[string]
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, movieID int) (string, bool, error) {
	u, ok := s.lru.Get(strconv.Itoa(movieID))
	return u, ok, nil
}

// Set implements Store.
func (s *MemoryStore) Set(_ context.Context, movieID int, url string) error {
	s.lru.Add(strconv.Itoa(movieID), url)
	return nil
}

// Len implements Store.
func (s *MemoryStore) Len() int {
	return s.lru.Len()
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	s.lru.Clear()
	return nil
}

// Sweeper exposes the LRU for periodic expiry.
func (s *MemoryStore) Sweeper() cache.Sweeper {
	return s.lru
}

// redisStore keeps URLs in Redis with a per-key TTL.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// Get implements Store.
func (s *redisStore) Get(ctx context.Context, movieID int) (string, bool, error) {
	val, err := s.client.Get(ctx, s.key(movieID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set implements Store.
func (s *redisStore) Set(ctx context.Context, movieID int, url string) error {
	return s.client.Set(ctx, s.key(movieID), url, s.ttl).Err()
}

// Len counts prefixed keys with SCAN. It returns -1 when Redis is
// unreachable.
func (s *redisStore) Len() int {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	n := 0
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 500).Iterator()
	for iter.Next(ctx) {
		n++
	}
	if iter.Err() != nil {
		return -1
	}
	return n
}

// Close implements Store.
func (s *redisStore) Close() error {
	return s.client.Close()
}

func (s *redisStore) key(movieID int) string {
	return s.prefix + strconv.Itoa(movieID)
}
