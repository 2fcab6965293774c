// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/zivi-portal/internal/config"
	"github.com/MKhiriev/zivi-portal/internal/handler"
	"github.com/MKhiriev/zivi-portal/internal/logger"
	"github.com/MKhiriev/zivi-portal/internal/service"
)

type fakeWorker struct {
	runs, stops int
	deadline    bool
}

func (w *fakeWorker) Run() { w.runs++ }

func (w *fakeWorker) Stop(ctx context.Context) {
	w.stops++
	_, w.deadline = ctx.Deadline()
}

func testHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)
	return handlers
}

func TestNewServer_RequiresHandlersAndAddress(t *testing.T) {
	cfg := config.Server{HTTPAddress: "localhost:0", RequestTimeout: time.Second}

	_, err := NewServer(nil, nil, cfg, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(&handler.Handlers{}, nil, cfg, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(testHandlers(t, cfg), nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	srv, err := NewServer(testHandlers(t, cfg), nil, cfg, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, srv)
}

func TestNewHTTPServer_Timeouts(t *testing.T) {
	cfg := config.Server{HTTPAddress: "localhost:0", RequestTimeout: 30 * time.Second}

	s := newHTTPServer(nil, cfg, logger.Nop())

	assert.Equal(t, "localhost:0", s.server.Addr)
	assert.Equal(t, 35*time.Second, s.server.WriteTimeout)
	assert.Equal(t, 10*time.Second, s.server.ReadHeaderTimeout)
}

func TestShutdown_StopsWorkers(t *testing.T) {
	cfg := config.Server{HTTPAddress: "localhost:0", RequestTimeout: time.Second}
	worker := &fakeWorker{}

	srv, err := NewServer(testHandlers(t, cfg), worker, cfg, logger.Nop())
	require.NoError(t, err)

	srv.Shutdown()

	assert.Equal(t, 0, worker.runs)
	assert.Equal(t, 1, worker.stops)
	assert.True(t, worker.deadline)
}
