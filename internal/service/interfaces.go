// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/zivi-portal/models"
)

// AuthService owns login, logout and the resolution of session tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (models.LoginResult, error)
	Logout(ctx context.Context, sessionID string) error

	// Authenticate resolves a bearer token to the user and the active session
	// it names.
	Authenticate(ctx context.Context, tokenString string) (models.User, models.Session, error)

	SetPasswordAfterFirstLogin(ctx context.Context, actor models.User, newPassword string) (models.User, error)

	// SeedAdmin creates the bootstrap administrator when no user exists yet.
	SeedAdmin(ctx context.Context) error
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

type UserService interface {
	ListUsers(ctx context.Context, actor models.User) ([]models.User, error)
	CreateUser(ctx context.Context, actor models.User, data models.NewUser) (models.CreatedUser, error)
	UpdateUser(ctx context.Context, actor models.User, userID string, patch models.UserPatch) (models.User, error)
	DeleteUser(ctx context.Context, actor models.User, userID string) error
	ChangePassword(ctx context.Context, actor models.User, userID string, change models.PasswordChange) error
	UpdateProfilePicture(ctx context.Context, actor models.User, userID, dataURI string) (models.User, error)
}

type BulletinService interface {
	ListPosts(ctx context.Context, actor models.User, category string) ([]models.Post, error)
	CreatePost(ctx context.Context, actor models.User, data models.NewPost) (models.Post, error)
	ViewPost(ctx context.Context, actor models.User, postID string) (models.Post, error)
	VotePost(ctx context.Context, actor models.User, postID string, direction models.Vote) (models.Post, error)
}

type HelpdeskService interface {
	ListTickets(ctx context.Context, actor models.User, status string) ([]models.Ticket, error)
	CreateTicket(ctx context.Context, actor models.User, data models.NewTicket) (models.Ticket, error)
	ViewTicket(ctx context.Context, actor models.User, ticketID string) (models.Ticket, error)
	AddComment(ctx context.Context, actor models.User, ticketID string, data models.NewComment) (models.Comment, error)
	ListComments(ctx context.Context, actor models.User, ticketID string) ([]models.Comment, error)
	AssignTicket(ctx context.Context, actor models.User, ticketID, assignee string) (models.Ticket, error)
	UnassignTicket(ctx context.Context, actor models.User, ticketID, assignee string) (models.Ticket, error)
	UpdateStatus(ctx context.Context, actor models.User, ticketID string, status models.TicketStatus) (models.Ticket, error)
}

type ReminderService interface {
	ListReminders(ctx context.Context, actor models.User, filter string) ([]models.Reminder, error)
	CreateReminder(ctx context.Context, actor models.User, data models.NewReminder) (models.Reminder, error)
	ToggleReminder(ctx context.Context, actor models.User, reminderID string) (models.Reminder, error)
	DeleteReminder(ctx context.Context, actor models.User, reminderID string) error

	// RollRecurringReminders reopens completed recurring reminders whose due
	// time has passed at their next occurrence. It returns how many moved.
	RollRecurringReminders(ctx context.Context) (int, error)
}

type FoodService interface {
	ListFoodItems(ctx context.Context, actor models.User, tag string) ([]models.FoodItem, error)
	CreateFoodItem(ctx context.Context, actor models.User, data models.NewFoodItem) (models.FoodItem, error)
	ViewFoodItem(ctx context.Context, actor models.User, itemID string) (models.FoodItem, error)
	VoteFoodItem(ctx context.Context, actor models.User, itemID string, direction models.Vote) (models.FoodItem, error)
}

type MealPlanService interface {
	WeeklyPlan(ctx context.Context, actor models.User) ([]models.CookingAssignment, error)
	PlanMeal(ctx context.Context, actor models.User, day, foodItemID string) (models.CookingAssignment, error)
	RemovePlannedMeal(ctx context.Context, actor models.User, day string) (models.CookingAssignment, error)
	UpdateCookingDetails(ctx context.Context, actor models.User, day string, details models.CookingDetails) (models.CookingAssignment, error)
	MarkAsPaid(ctx context.Context, actor models.User, day string) (models.CookingAssignment, error)
}

// InfoService serves the "Informationen" page: contact data and the weekly
// duty schedule. Everyone reads it, admins edit it.
type InfoService interface {
	GetInfoPage(ctx context.Context, actor models.User) (models.InfoPage, error)
	UpdateInfoPage(ctx context.Context, actor models.User, update models.InfoUpdate) (models.InfoPage, error)
}

type WishlistService interface {
	ListWishlistItems(ctx context.Context, actor models.User, status, category string) ([]models.WishlistItem, error)
	CreateWishlistItem(ctx context.Context, actor models.User, data models.NewWishlistItem) (models.WishlistItem, error)
	ViewWishlistItem(ctx context.Context, actor models.User, itemID string) (models.WishlistItem, error)
	VoteWishlistItem(ctx context.Context, actor models.User, itemID string, direction models.Vote) (models.WishlistItem, error)
	UpdateStatus(ctx context.Context, actor models.User, itemID string, update models.WishlistStatusUpdate) (models.WishlistItem, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
