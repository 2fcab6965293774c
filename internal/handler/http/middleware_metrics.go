// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/zivi-portal/internal/metrics"
)

const metricsPath = "/metrics"

// withMetrics records duration and count per request, labelled with the
// matched route pattern so IDs in the path do not create new series.
// Scrapes of the metrics endpoint itself are not counted.
func withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		mw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(mw, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}
		if path == metricsPath {
			return
		}

		metrics.RecordRequest(r.Method, path, mw.statusCode(), time.Since(start).Seconds())
	})
}
