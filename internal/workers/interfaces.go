// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations start their own goroutines.
// Stop blocks until in-flight work has finished or ctx is done.
type Worker interface {
	Run()
	Stop(ctx context.Context)
}

// ReminderRoller moves completed recurring reminders to their next occurrence.
type ReminderRoller interface {
	RollRecurringReminders(ctx context.Context) (int, error)
}

// SessionPurger deletes expired sessions.
type SessionPurger interface {
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}
