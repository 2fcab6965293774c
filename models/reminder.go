// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RecurringType is the repetition interval of a recurring reminder.
type RecurringType string

const (
	RecurringDaily   RecurringType = "daily"
	RecurringWeekly  RecurringType = "weekly"
	RecurringMonthly RecurringType = "monthly"
)

// Reminder is a personal task with a due time.
type Reminder struct {
	ID            string        `json:"id"`
	OwnerID       string        `json:"owner_id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	DueAt         time.Time     `json:"due_at"`
	Priority      Priority      `json:"priority"`
	IsRecurring   bool          `json:"is_recurring"`
	RecurringType RecurringType `json:"recurring_type,omitempty"`
	Completed     bool          `json:"completed"`
	CreatedAt     time.Time     `json:"created_at"`

	// Overdue is computed at read time.
	Overdue bool `json:"overdue"`
}

// NewReminder is the body of a reminder creation request.
// DueDate is "2006-01-02" and DueTime is "15:04".
type NewReminder struct {
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	DueDate       string        `json:"due_date"`
	DueTime       string        `json:"due_time"`
	Priority      Priority      `json:"priority" validate:"omitempty,oneof=low medium high"`
	IsRecurring   bool          `json:"is_recurring"`
	RecurringType RecurringType `json:"recurring_type" validate:"omitempty,oneof=daily weekly monthly"`
}

// Reminder list filters.
const (
	ReminderFilterAll       = "all"
	ReminderFilterPending   = "pending"
	ReminderFilterCompleted = "completed"
)
