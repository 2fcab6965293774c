// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/zivi-portal/internal/interaction"
	"github.com/MKhiriev/zivi-portal/internal/logger"
	"github.com/MKhiriev/zivi-portal/internal/mock"
	"github.com/MKhiriev/zivi-portal/internal/store"
	"github.com/MKhiriev/zivi-portal/internal/validators"
	"github.com/MKhiriev/zivi-portal/models"
)

// Reminder tests run on Monday 2026-03-02 from 08:00 UTC.
func TestCreateReminder(t *testing.T) {
	env := newTestEnv(t, listsStart)
	ctx := context.Background()

	_, err := env.reminders.CreateReminder(ctx, env.anna, models.NewReminder{Title: "Bericht", DueDate: "2026-03-05"})
	assert.ErrorIs(t, err, interaction.ErrValidation)

	_, err = env.reminders.CreateReminder(ctx, env.anna, models.NewReminder{Title: "Bericht", DueDate: "05.03.2026", DueTime: "10:00"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = env.reminders.CreateReminder(ctx, env.anna, models.NewReminder{
		Title: "Bericht", DueDate: "2026-03-05", DueTime: "10:00", RecurringType: "yearly"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	reminder, err := env.reminders.CreateReminder(ctx, env.anna, models.NewReminder{
		Title: "Bericht", DueDate: "2026-03-05", DueTime: "10:00", IsRecurring: true})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC), reminder.DueAt)
	assert.Equal(t, models.PriorityMedium, reminder.Priority)
	assert.Equal(t, models.RecurringWeekly, reminder.RecurringType)
	assert.False(t, reminder.Overdue)

	oneOff, err := env.reminders.CreateReminder(ctx, env.anna, models.NewReminder{
		Title: "Einmalig", DueDate: "2026-03-01", DueTime: "09:00", RecurringType: models.RecurringDaily})
	require.NoError(t, err)
	assert.Empty(t, oneOff.RecurringType, "a type without the recurring flag is dropped")
	assert.True(t, oneOff.Overdue)
}

func TestListReminders_FilterSortAndOwnership(t *testing.T) {
	env := newTestEnv(t, listsStart)
	ctx := context.Background()

	create := func(owner models.User, title, date, clock string) models.Reminder {
		r, err := env.reminders.CreateReminder(ctx, owner, models.NewReminder{Title: title, DueDate: date, DueTime: clock})
		require.NoError(t, err)
		return r
	}
	late := create(env.anna, "Spät", "2026-03-09", "18:00")
	early := create(env.anna, "Früh", "2026-03-01", "07:00")
	done := create(env.anna, "Erledigt", "2026-02-20", "12:00")
	create(env.ben, "Fremd", "2026-03-03", "12:00")

	toggled, err := env.reminders.ToggleReminder(ctx, env.anna, done.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)
	assert.False(t, toggled.Overdue, "completed reminders are never overdue")

	all, err := env.reminders.ListReminders(ctx, env.anna, models.ReminderFilterAll)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{early.ID, late.ID, done.ID}, []string{all[0].ID, all[1].ID, all[2].ID})
	assert.True(t, all[0].Overdue)
	assert.False(t, all[1].Overdue)

	pending, err := env.reminders.ListReminders(ctx, env.anna, models.ReminderFilterPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	completed, err := env.reminders.ListReminders(ctx, env.anna, models.ReminderFilterCompleted)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, done.ID, completed[0].ID)

	_, err = env.reminders.ToggleReminder(ctx, env.ben, late.ID)
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
	assert.ErrorIs(t, env.reminders.DeleteReminder(ctx, env.ben, late.ID), store.ErrRecordNotFound)

	require.NoError(t, env.reminders.DeleteReminder(ctx, env.anna, late.ID))
	all, err = env.reminders.ListReminders(ctx, env.anna, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRollRecurringReminders(t *testing.T) {
	env := newTestEnv(t, listsStart)
	ctx := context.Background()

	create := func(title, date string, recurring models.RecurringType) models.Reminder {
		r, err := env.reminders.CreateReminder(ctx, env.anna, models.NewReminder{
			Title: title, DueDate: date, DueTime: "09:00", IsRecurring: recurring != "", RecurringType: recurring})
		require.NoError(t, err)
		return r
	}
	weekly := create("Putzplan", "2026-02-16", models.RecurringWeekly)
	daily := create("Post holen", "2026-03-01", models.RecurringDaily)
	future := create("Zukunft", "2026-03-20", models.RecurringWeekly)
	oneOff := create("Einmalig", "2026-02-01", "")
	open := create("Offen", "2026-02-23", models.RecurringWeekly)

	for _, r := range []models.Reminder{weekly, daily, future, oneOff} {
		_, err := env.reminders.ToggleReminder(ctx, env.anna, r.ID)
		require.NoError(t, err)
	}

	rolled, err := env.reminders.RollRecurringReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, rolled)

	byID := map[string]models.Reminder{}
	all, err := env.reminders.ListReminders(ctx, env.anna, "all")
	require.NoError(t, err)
	for _, r := range all {
		byID[r.ID] = r
	}

	assert.False(t, byID[weekly.ID].Completed)
	// two weekly steps land on 2026-03-02 09:00, still after the clock
	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), byID[weekly.ID].DueAt.UTC())
	assert.False(t, byID[daily.ID].Completed)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), byID[daily.ID].DueAt.UTC())

	assert.True(t, byID[future.ID].Completed, "not due yet")
	assert.True(t, byID[oneOff.ID].Completed, "not recurring")
	assert.False(t, byID[open.ID].Completed)
	assert.Equal(t, open.DueAt, byID[open.ID].DueAt.UTC(), "open reminders stay where they are")

	rolled, err = env.reminders.RollRecurringReminders(ctx)
	require.NoError(t, err)
	assert.Zero(t, rolled)
}

func TestRollRecurringReminders_StopsOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockReminderRepository(ctrl)
	svc := NewReminderService(repo, validators.NewStructValidator(), &sequentialIDs{prefix: "r"}, logger.Nop()).(*reminderService)
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	svc.clock = func() time.Time { return now }
	svc.location = time.UTC
	dbErr := errors.New("locked")

	repo.EXPECT().ListCompletedRecurring(gomock.Any(), now).Return([]models.Reminder{
		{ID: "r-1", DueAt: now.Add(-time.Hour), RecurringType: models.RecurringDaily},
		{ID: "r-2", DueAt: now.Add(-time.Hour), RecurringType: models.RecurringDaily},
	}, nil)
	gomock.InOrder(
		repo.EXPECT().RescheduleReminder(gomock.Any(), "r-1", now.Add(23*time.Hour)).Return(nil),
		repo.EXPECT().RescheduleReminder(gomock.Any(), "r-2", gomock.Any()).Return(dbErr),
	)

	rolled, err := svc.RollRecurringReminders(context.Background())
	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, 1, rolled)
}

func TestNextOccurrence(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		due       time.Time
		recurring models.RecurringType
		want      time.Time
	}{
		{"daily, yesterday", time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), models.RecurringDaily,
			time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)},
		{"daily, a week behind", time.Date(2026, 2, 23, 7, 0, 0, 0, time.UTC), models.RecurringDaily,
			time.Date(2026, 3, 3, 7, 0, 0, 0, time.UTC)},
		{"weekly", time.Date(2026, 2, 27, 12, 0, 0, 0, time.UTC), models.RecurringWeekly,
			time.Date(2026, 3, 6, 12, 0, 0, 0, time.UTC)},
		{"monthly across a short month", time.Date(2026, 1, 31, 10, 0, 0, 0, time.UTC), models.RecurringMonthly,
			time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)},
		{"exactly now moves one more step", time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC), models.RecurringDaily,
			time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, nextOccurrence(tc.due, tc.recurring, now))
		})
	}
}
