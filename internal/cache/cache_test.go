// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/zivi-portal/internal/logger"
)

func TestNilClient_IsSafe(t *testing.T) {
	var c *Client
	ctx := context.Background()

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
	assert.NotPanics(t, func() {
		c.Set(ctx, "k", "v", time.Minute)
		c.Delete(ctx, "k")
	})
	assert.NoError(t, c.Ping(ctx))
	assert.NoError(t, c.Close())
}

func TestUnreachableServer_BehavesLikeMiss(t *testing.T) {
	// nothing listens on port 1
	c := New("127.0.0.1:1", logger.Nop())
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	assert.Error(t, c.Ping(ctx))

	_, ok := c.Get(ctx, "session:1")
	assert.False(t, ok)

	assert.NotPanics(t, func() {
		c.Set(ctx, "session:1", "{}", time.Minute)
		c.Delete(ctx, "session:1")
	})
}
