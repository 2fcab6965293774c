// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/zivi-portal/internal/interaction"
	"github.com/MKhiriev/zivi-portal/internal/logger"
	"github.com/MKhiriev/zivi-portal/internal/metrics"
	"github.com/MKhiriev/zivi-portal/internal/store"
	"github.com/MKhiriev/zivi-portal/internal/validators"
	"github.com/MKhiriev/zivi-portal/models"
)

const (
	dueDateLayout = "2006-01-02"
	dueTimeLayout = "15:04"
)

type reminderService struct {
	reminderRepository store.ReminderRepository
	validator          validators.Validator
	ids                idGenerator
	clock              clock

	// location is the zone the due date and time of a new reminder are read in.
	location *time.Location

	logger *logger.Logger
}

func NewReminderService(reminders store.ReminderRepository, validator validators.Validator, ids idGenerator, logger *logger.Logger) ReminderService {
	return &reminderService{
		reminderRepository: reminders,
		validator:          validator,
		ids:                ids,
		location:           time.Local,
		logger:             logger,
	}
}

// ListReminders returns the actor's reminders selected by filter
// ("all", "pending" or "completed"). Pending ones come first, each group by
// due time ascending.
func (s *reminderService) ListReminders(ctx context.Context, actor models.User, filter string) ([]models.Reminder, error) {
	if err := requireUser(actor); err != nil {
		return nil, err
	}

	reminders, err := s.reminderRepository.ListReminders(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing reminders: %w", err)
	}

	reminders = interaction.Filter(reminders, func(r models.Reminder) bool {
		switch filter {
		case models.ReminderFilterPending:
			return !r.Completed
		case models.ReminderFilterCompleted:
			return r.Completed
		default:
			return true
		}
	})

	now := s.clock.now()
	for i := range reminders {
		reminders[i].Overdue = isOverdue(reminders[i], now)
	}

	slices.SortStableFunc(reminders, func(a, b models.Reminder) int {
		if a.Completed != b.Completed {
			if a.Completed {
				return 1
			}
			return -1
		}
		return a.DueAt.Compare(b.DueAt)
	})

	return reminders, nil
}

// CreateReminder requires a title, a due date (YYYY-MM-DD) and a due time
// (HH:MM). Priority defaults to medium; a recurring reminder without a type
// repeats weekly.
func (s *reminderService) CreateReminder(ctx context.Context, actor models.User, data models.NewReminder) (models.Reminder, error) {
	if err := requireUser(actor); err != nil {
		return models.Reminder{}, err
	}

	if err := interaction.Required("title", data.Title, "due_date", data.DueDate, "due_time", data.DueTime); err != nil {
		return models.Reminder{}, err
	}
	if err := s.validator.Validate(ctx, data); err != nil {
		return models.Reminder{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	dueAt, err := time.ParseInLocation(dueDateLayout+" "+dueTimeLayout,
		strings.TrimSpace(data.DueDate)+" "+strings.TrimSpace(data.DueTime), s.location)
	if err != nil {
		return models.Reminder{}, fmt.Errorf("%w: due date or time: %w", ErrInvalidDataProvided, err)
	}

	priority := data.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	var recurringType models.RecurringType
	if data.IsRecurring {
		recurringType = data.RecurringType
		if recurringType == "" {
			recurringType = models.RecurringWeekly
		}
	}

	now := s.clock.now()
	reminder := models.Reminder{
		ID:            s.ids.Generate(),
		OwnerID:       actor.ID,
		Title:         strings.TrimSpace(data.Title),
		Description:   strings.TrimSpace(data.Description),
		DueAt:         dueAt,
		Priority:      priority,
		IsRecurring:   data.IsRecurring,
		RecurringType: recurringType,
		CreatedAt:     now,
	}
	if err = s.reminderRepository.CreateReminder(ctx, reminder); err != nil {
		return models.Reminder{}, fmt.Errorf("error creating reminder: %w", err)
	}

	reminder.Overdue = isOverdue(reminder, now)
	return reminder, nil
}

func (s *reminderService) ToggleReminder(ctx context.Context, actor models.User, reminderID string) (models.Reminder, error) {
	if err := requireUser(actor); err != nil {
		return models.Reminder{}, err
	}

	reminder, err := s.reminderRepository.GetReminder(ctx, reminderID, actor.ID)
	if err != nil {
		return models.Reminder{}, fmt.Errorf("error loading reminder: %w", err)
	}

	reminder.Completed = !reminder.Completed
	if err = s.reminderRepository.SetReminderCompleted(ctx, reminderID, actor.ID, reminder.Completed); err != nil {
		return models.Reminder{}, fmt.Errorf("error updating reminder: %w", err)
	}

	reminder.Overdue = isOverdue(reminder, s.clock.now())
	return reminder, nil
}

func (s *reminderService) DeleteReminder(ctx context.Context, actor models.User, reminderID string) error {
	if err := requireUser(actor); err != nil {
		return err
	}

	if err := s.reminderRepository.DeleteReminder(ctx, reminderID, actor.ID); err != nil {
		return fmt.Errorf("error deleting reminder: %w", err)
	}
	return nil
}

func (s *reminderService) RollRecurringReminders(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	now := s.clock.now()
	due, err := s.reminderRepository.ListCompletedRecurring(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("error listing recurring reminders: %w", err)
	}

	rolled := 0
	for _, reminder := range due {
		next := nextOccurrence(reminder.DueAt.In(s.location), reminder.RecurringType, now)
		if err = s.reminderRepository.RescheduleReminder(ctx, reminder.ID, next); err != nil {
			log.Err(err).Str("reminder_id", reminder.ID).Msg("reminder could not be rescheduled")
			metrics.AddRemindersRolled(rolled)
			return rolled, fmt.Errorf("error rescheduling reminder: %w", err)
		}
		rolled++
	}

	metrics.AddRemindersRolled(rolled)
	return rolled, nil
}

// nextOccurrence advances dueAt by the recurrence step until it lies after now.
// Monthly steps follow the calendar, so Jan 31 rolls to Mar 3 in a common year.
func nextOccurrence(dueAt time.Time, recurring models.RecurringType, now time.Time) time.Time {
	step := func(t time.Time) time.Time {
		switch recurring {
		case models.RecurringDaily:
			return t.AddDate(0, 0, 1)
		case models.RecurringMonthly:
			return t.AddDate(0, 1, 0)
		default:
			return t.AddDate(0, 0, 7)
		}
	}

	next := step(dueAt)
	for !next.After(now) {
		next = step(next)
	}
	return next
}

func isOverdue(r models.Reminder, now time.Time) bool {
	return !r.Completed && r.DueAt.Before(now)
}
