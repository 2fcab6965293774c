// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics defines the Prometheus collectors of the portal server.
// They are registered with the default registry and exposed on /metrics.
package metrics

import (
	"regexp"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, path, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts HTTP requests by method, path, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// LoginsTotal counts login attempts by result (success, failure).
	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_logins_total",
			Help: "Total number of login attempts by result",
		},
		[]string{"result"},
	)

	// VotesTotal counts accepted votes by record kind and resulting vote.
	VotesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_votes_total",
			Help: "Total number of votes cast by record kind and resulting vote",
		},
		[]string{"kind", "vote"},
	)

	// RemindersRolledTotal counts recurring reminders moved to their next occurrence.
	RemindersRolledTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "portal_reminders_rolled_total",
			Help: "Total number of recurring reminders reopened by the scheduler",
		},
	)
)

var (
	idPathSegment = regexp.MustCompile(`/([0-9]+|[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12})(/|$)`)
	initOnce      sync.Once
)

func init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestDuration, RequestTotal, LoginsTotal, VotesTotal, RemindersRolledTotal)
	})
}

// NormalizePath reduces cardinality by replacing numeric and UUID path segments with {id}.
// E.g. /api/tickets/0195.../comments -> /api/tickets/{id}/comments.
// It is the fallback for requests that did not match a route pattern.
func NormalizePath(path string) string {
	// ReplaceAll does not revisit the shared slash, so run until stable.
	for {
		next := idPathSegment.ReplaceAllString(path, "/{id}$2")
		if next == path {
			return next
		}
		path = next
	}
}

// RecordRequest records duration and count for an HTTP request.
// path should be the matched route pattern when one is known.
func RecordRequest(method, path string, statusCode int, durationSeconds float64) {
	path = NormalizePath(path)
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, path, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, path, status).Inc()
}

// RecordLogin counts a login attempt.
func RecordLogin(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	LoginsTotal.WithLabelValues(result).Inc()
}

// RecordVote counts a vote. An empty vote is recorded as "none".
func RecordVote(kind, vote string) {
	if vote == "" {
		vote = "none"
	}
	VotesTotal.WithLabelValues(kind, vote).Inc()
}

// AddRemindersRolled adds n to the rolled reminders counter.
func AddRemindersRolled(n int) {
	if n > 0 {
		RemindersRolledTotal.Add(float64(n))
	}
}
