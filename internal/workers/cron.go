// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/zivi-portal/internal/logger"
)

// jobTimeout bounds a single job run.
const jobTimeout = 30 * time.Second

// CronWorker runs jobs on cron schedules. Runs of the same job never overlap.
type CronWorker struct {
	cron   *cron.Cron
	logger *logger.Logger
}

// NewCronWorker creates a worker with no jobs. Schedules use the standard
// five-field syntax plus descriptors such as "@every 1m".
func NewCronWorker(log *logger.Logger) *CronWorker {
	cl := cronLogger{log: log}
	return &CronWorker{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		logger: log,
	}
}

// AddJob registers job under name. Each run gets a context carrying a child
// logger with the job name.
func (w *CronWorker) AddJob(spec, name string, job func(ctx context.Context) error) error {
	_, err := w.cron.AddFunc(spec, w.wrap(name, job))
	if err != nil {
		return fmt.Errorf("invalid schedule %q for job %s: %w", spec, name, err)
	}
	return nil
}

func (w *CronWorker) wrap(name string, job func(ctx context.Context) error) func() {
	return func() {
		log := w.logger.GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("job", name)
		})

		ctx, cancel := context.WithTimeout(log.WithContext(context.Background()), jobTimeout)
		defer cancel()

		start := time.Now()
		if err := job(ctx); err != nil {
			log.Err(err).Dur("duration", time.Since(start)).Msg("job failed")
			return
		}
		log.Debug().Dur("duration", time.Since(start)).Msg("job finished")
	}
}

func (w *CronWorker) Run() {
	w.logger.Info().Int("jobs", len(w.cron.Entries())).Msg("starting cron worker")
	w.cron.Start()
}

func (w *CronWorker) Stop(ctx context.Context) {
	done := w.cron.Stop().Done()
	select {
	case <-done:
		w.logger.Info().Msg("cron worker stopped")
	case <-ctx.Done():
		w.logger.Warn().Msg("cron worker stop timed out")
	}
}

// NewMaintenanceWorker schedules the reminder roller and the session purge.
func NewMaintenanceWorker(reminderSchedule string, roller ReminderRoller, purger SessionPurger, log *logger.Logger) (*CronWorker, error) {
	w := NewCronWorker(log)

	err := w.AddJob(reminderSchedule, "roll-recurring-reminders", func(ctx context.Context) error {
		rolled, err := roller.RollRecurringReminders(ctx)
		if rolled > 0 {
			logger.FromContext(ctx).Info().Int("rolled", rolled).Msg("recurring reminders reopened")
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	err = w.AddJob("@hourly", "purge-expired-sessions", func(ctx context.Context) error {
		purged, err := purger.PurgeExpiredSessions(ctx)
		if purged > 0 {
			logger.FromContext(ctx).Info().Int64("purged", purged).Msg("expired sessions deleted")
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return w, nil
}

// cronLogger adapts *logger.Logger to cron.Logger.
type cronLogger struct {
	log *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Err(err).Fields(keysAndValues).Msg(msg)
}
