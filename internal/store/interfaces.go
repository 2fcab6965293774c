// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/zivi-portal/models"
)

// UserRepository persists portal accounts.
type UserRepository interface {
	// CreateUser inserts the user together with its credential row.
	// Returns ErrEmailAlreadyExists when the email is taken ignoring case.
	CreateUser(ctx context.Context, user models.User, passwordHash string) error
	GetUserByID(ctx context.Context, userID string) (models.User, error)
	// GetUserByEmail looks the user up ignoring case.
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	CountUsers(ctx context.Context) (int, error)
	UpdateUser(ctx context.Context, user models.User) error
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error
	// DeleteUser removes the user; credentials and sessions go with it.
	DeleteUser(ctx context.Context, userID string) error
}

// CredentialStore keeps password hashes apart from user records.
type CredentialStore interface {
	GetPasswordHash(ctx context.Context, userID string) (string, error)
	SetPasswordHash(ctx context.Context, userID, passwordHash string, at time.Time) error
	// CompleteFirstLogin stores the new hash and clears the user's
	// first-login flag in one transaction.
	CompleteFirstLogin(ctx context.Context, userID, passwordHash string, at time.Time) error
}

// SessionRepository persists server-side login sessions.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context, sessionID string) (models.Session, error)
	// RevokeSession marks the session revoked. Revoking twice is not an error.
	RevokeSession(ctx context.Context, sessionID string, at time.Time) error
	// DeleteExpiredSessions removes sessions that expired before the given time.
	DeleteExpiredSessions(ctx context.Context, before time.Time) (int64, error)
}

// SessionCache is the key-value cache used in front of [SessionRepository].
type SessionCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

// VoteDecider computes the next vote from the one currently stored.
type VoteDecider func(current models.Vote) (models.Vote, error)

// InteractionRepository records views and votes for every record kind.
type InteractionRepository interface {
	// RecordView clears the record's global new flag and stamps the viewer.
	RecordView(ctx context.Context, kind models.RecordKind, recordID, userID string, at time.Time) error
	// CastVote reads the user's current vote, asks decide for the next one and
	// stores it. The user is stamped as viewer as well.
	CastVote(ctx context.Context, kind models.RecordKind, recordID, userID string, at time.Time, decide VoteDecider) (old, next models.Vote, err error)
}

// BulletinRepository stores bulletin board posts.
type BulletinRepository interface {
	CreatePost(ctx context.Context, post models.Post) error
	GetPost(ctx context.Context, postID, userID string) (models.Post, error)
	// ListPosts returns every post with views and the tally as seen by userID.
	ListPosts(ctx context.Context, userID string) ([]models.Post, error)
}

// TicketRepository stores helpdesk tickets, their comments and assignees.
type TicketRepository interface {
	CreateTicket(ctx context.Context, ticket models.Ticket) error
	GetTicket(ctx context.Context, ticketID string) (models.Ticket, error)
	ListTickets(ctx context.Context) ([]models.Ticket, error)
	// UpdateTicketStatus writes Status, ResolvedAt and ClosedAt.
	UpdateTicketStatus(ctx context.Context, ticket models.Ticket) error
	AddAssignee(ctx context.Context, ticketID, assignee string, at time.Time) error
	RemoveAssignee(ctx context.Context, ticketID, assignee string) error
	// AddComment stores the comment and stamps its author as viewer of the ticket.
	AddComment(ctx context.Context, comment models.Comment) error
	ListComments(ctx context.Context, ticketID string) ([]models.Comment, error)
}

// ReminderRepository stores personal reminders. Every call except the
// recurring ones used by the scheduler is scoped to the owner.
type ReminderRepository interface {
	CreateReminder(ctx context.Context, reminder models.Reminder) error
	GetReminder(ctx context.Context, reminderID, ownerID string) (models.Reminder, error)
	ListReminders(ctx context.Context, ownerID string) ([]models.Reminder, error)
	SetReminderCompleted(ctx context.Context, reminderID, ownerID string, completed bool) error
	DeleteReminder(ctx context.Context, reminderID, ownerID string) error
	// ListCompletedRecurring returns completed recurring reminders due before the given time.
	ListCompletedRecurring(ctx context.Context, before time.Time) ([]models.Reminder, error)
	// RescheduleReminder moves a reminder to dueAt and reopens it.
	RescheduleReminder(ctx context.Context, reminderID string, dueAt time.Time) error
}

// FoodRepository stores meal suggestions.
type FoodRepository interface {
	CreateFoodItem(ctx context.Context, item models.FoodItem) error
	GetFoodItem(ctx context.Context, itemID, userID string) (models.FoodItem, error)
	ListFoodItems(ctx context.Context, userID string) ([]models.FoodItem, error)
}

// MealPlanRepository stores the five weekday slots of the meal plan.
type MealPlanRepository interface {
	GetMealPlan(ctx context.Context) ([]models.MealPlanSlot, error)
	// PlanMeal assigns the item to the day, stamps its PlannedFor and clears
	// PlannedFor on the item it replaces.
	PlanMeal(ctx context.Context, day, foodItemID string, plannedFor time.Time) error
	// RemovePlannedMeal resets the day and clears the item's PlannedFor.
	RemovePlannedMeal(ctx context.Context, day string) error
	UpdateCookingDetails(ctx context.Context, day string, details models.CookingDetails) error
	MarkAsPaid(ctx context.Context, day, userID string, at time.Time) error
}

// InfoRepository stores the contact data and duty schedule of the info page.
type InfoRepository interface {
	// GetInfoPage returns the schedule in week order, Montag first.
	GetInfoPage(ctx context.Context) (models.InfoPage, error)
	UpdateInfoPage(ctx context.Context, page models.InfoPage, updatedAt time.Time) error
}

// WishlistRepository stores purchase suggestions.
type WishlistRepository interface {
	CreateWishlistItem(ctx context.Context, item models.WishlistItem) error
	GetWishlistItem(ctx context.Context, itemID, userID string) (models.WishlistItem, error)
	ListWishlistItems(ctx context.Context, userID string) ([]models.WishlistItem, error)
	// UpdateWishlistStatus writes Status, FulfilledAt and RejectedReason.
	UpdateWishlistStatus(ctx context.Context, item models.WishlistItem) error
}

// ErrorClassifier maps a driver error to an [ErrorClassification].
type ErrorClassifier interface {
	Classify(err error) ErrorClassification
}
