// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache provides a Redis client that fails safe: every connectivity
// error is logged and treated as a cache miss, so an unavailable Redis never
// breaks a request.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/zivi-portal/internal/logger"
)

// Client wraps redis.Client and swallows its errors.
type Client struct {
	client *redis.Client
	logger *logger.Logger
}

// New creates a client for the Redis server at addr. No connection is made
// until the first command.
func New(addr string, logger *logger.Logger) *Client {
	opts := &redis.Options{
		Addr:         addr,
		DialTimeout:  time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	}
	return &Client{client: redis.NewClient(opts), logger: logger}
}

// Ping checks connectivity. It is the only method that reports errors and is
// used once at startup to log whether the cache is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// Get returns the value stored under key. A missing key and an unreachable
// server both report ok == false.
func (c *Client) Get(ctx context.Context, key string) (string, bool) {
	if c == nil || c.client == nil {
		return "", false
	}
	res, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		c.logger.Debug().Err(err).Str("func", "*Client.Get").Msg("cache unavailable")
		return "", false
	}
	return res, true
}

// Set stores value with TTL. Non-positive TTLs are ignored.
func (c *Client) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if c == nil || c.client == nil || ttl <= 0 {
		return
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.logger.Debug().Err(err).Str("func", "*Client.Set").Msg("cache unavailable")
	}
}

// Delete removes a key.
func (c *Client) Delete(ctx context.Context, key string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logger.Debug().Err(err).Str("func", "*Client.Delete").Msg("cache unavailable")
	}
}

// Close releases the connection pool.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
