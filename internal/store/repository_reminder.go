// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/zivi-portal/internal/logger"
	"github.com/MKhiriev/zivi-portal/models"
)

type reminderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewReminderRepository constructs a [ReminderRepository] backed by the "reminders" table.
func NewReminderRepository(db *DB, logger *logger.Logger) ReminderRepository {
	logger.Debug().Msg("creating reminder repository")
	return &reminderRepository{
		db:     db,
		logger: logger,
	}
}

func (r *reminderRepository) CreateReminder(ctx context.Context, reminder models.Reminder) error {
	_, err := r.db.exec(ctx, r.db, r.db.builder.Insert("reminders").
		Columns("id", "owner_id", "title", "description", "due_at", "priority",
			"is_recurring", "recurring_type", "completed", "created_at").
		Values(reminder.ID, reminder.OwnerID, reminder.Title, reminder.Description, reminder.DueAt.UTC(),
			string(reminder.Priority), reminder.IsRecurring, string(reminder.RecurringType),
			reminder.Completed, reminder.CreatedAt.UTC()))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reminderRepository.CreateReminder").Msg("error creating reminder")
	}
	return err
}

func (r *reminderRepository) selectReminders() sq.SelectBuilder {
	return r.db.builder.
		Select("id", "owner_id", "title", "description", "due_at", "priority",
			"is_recurring", "recurring_type", "completed", "created_at").
		From("reminders")
}

func scanReminder(row rowScanner) (models.Reminder, error) {
	var (
		reminder                models.Reminder
		priority, recurringType string
	)
	err := row.Scan(&reminder.ID, &reminder.OwnerID, &reminder.Title, &reminder.Description, &reminder.DueAt,
		&priority, &reminder.IsRecurring, &recurringType, &reminder.Completed, &reminder.CreatedAt)
	if err != nil {
		return models.Reminder{}, err
	}
	reminder.Priority = models.Priority(priority)
	reminder.RecurringType = models.RecurringType(recurringType)
	return reminder, nil
}

func (r *reminderRepository) scanReminders(rows *sql.Rows) ([]models.Reminder, error) {
	defer rows.Close()

	reminders := make([]models.Reminder, 0)
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		reminders = append(reminders, reminder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return reminders, nil
}

// GetReminder returns [ErrRecordNotFound] when the reminder does not exist or
// belongs to someone else.
func (r *reminderRepository) GetReminder(ctx context.Context, reminderID, ownerID string) (models.Reminder, error) {
	row, err := r.db.queryRow(ctx, r.db, r.selectReminders().Where(sq.Eq{"id": reminderID, "owner_id": ownerID}))
	if err != nil {
		return models.Reminder{}, err
	}

	reminder, err := scanReminder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Reminder{}, ErrRecordNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reminderRepository.GetReminder").Msg("error scanning reminder")
		return models.Reminder{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return reminder, nil
}

func (r *reminderRepository) ListReminders(ctx context.Context, ownerID string) ([]models.Reminder, error) {
	rows, err := r.db.query(ctx, r.db, r.selectReminders().Where(sq.Eq{"owner_id": ownerID}).OrderBy("due_at", "id"))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reminderRepository.ListReminders").Msg("error querying reminders")
		return nil, err
	}
	return r.scanReminders(rows)
}

func (r *reminderRepository) SetReminderCompleted(ctx context.Context, reminderID, ownerID string, completed bool) error {
	affected, err := r.db.exec(ctx, r.db, r.db.builder.Update("reminders").
		Set("completed", completed).
		Where(sq.Eq{"id": reminderID, "owner_id": ownerID}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reminderRepository.SetReminderCompleted").Msg("error updating reminder")
		return err
	}
	if affected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *reminderRepository) DeleteReminder(ctx context.Context, reminderID, ownerID string) error {
	affected, err := r.db.exec(ctx, r.db, r.db.builder.Delete("reminders").
		Where(sq.Eq{"id": reminderID, "owner_id": ownerID}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reminderRepository.DeleteReminder").Msg("error deleting reminder")
		return err
	}
	if affected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *reminderRepository) ListCompletedRecurring(ctx context.Context, before time.Time) ([]models.Reminder, error) {
	rows, err := r.db.query(ctx, r.db, r.selectReminders().
		Where(sq.Eq{"is_recurring": true, "completed": true}).
		Where(sq.Lt{"due_at": before.UTC()}).
		OrderBy("due_at", "id"))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reminderRepository.ListCompletedRecurring").Msg("error querying reminders")
		return nil, err
	}
	return r.scanReminders(rows)
}

func (r *reminderRepository) RescheduleReminder(ctx context.Context, reminderID string, dueAt time.Time) error {
	affected, err := r.db.exec(ctx, r.db, r.db.builder.Update("reminders").
		Set("due_at", dueAt.UTC()).
		Set("completed", false).
		Where(sq.Eq{"id": reminderID}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reminderRepository.RescheduleReminder").Msg("error rescheduling reminder")
		return err
	}
	if affected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
