// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/zivi-portal/internal/config"
	"github.com/MKhiriev/zivi-portal/internal/logger"
	"github.com/MKhiriev/zivi-portal/internal/store"
	"github.com/MKhiriev/zivi-portal/internal/utils"
	"github.com/MKhiriev/zivi-portal/internal/validators"
	"github.com/MKhiriev/zivi-portal/models"
)

const (
	testSignKey  = "test-sign-key"
	testPassword = "geheim123"
)

// steppingClock returns start plus one minute more on every call.
func steppingClock(start time.Time) clock {
	var (
		mu sync.Mutex
		n  int
	)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		n++
		return start.Add(time.Duration(n) * time.Minute)
	}
}

type sequentialIDs struct {
	mu     sync.Mutex
	prefix string
	n      int
}

func (g *sequentialIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%d", g.prefix, g.n)
}

// testEnv wires every service to one in-memory SQLite database.
type testEnv struct {
	storages *store.Storages

	auth      *authService
	users     *userService
	bulletin  *bulletinService
	helpdesk  *helpdeskService
	reminders *reminderService
	food      *foodService
	mealPlan  *mealPlanService
	wishlist  *wishlistService
	info      *infoService

	admin, anna, ben models.User
}

func newTestEnv(t *testing.T, start time.Time) *testEnv {
	t.Helper()
	ctx := context.Background()

	cfg := config.Storage{DB: config.DB{Driver: config.DriverSQLite, DSN: ":memory:"}}
	storages, err := store.NewStorages(ctx, cfg, nil, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	app := config.App{
		TokenSignKey:    testSignKey,
		TokenIssuer:     "zivi-portal-test",
		TokenDuration:   time.Hour,
		DefaultPassword: "password123",
		AdminEmail:      "admin@zivildienst.ch",
		AdminPassword:   "admin123",
	}
	clk := steppingClock(start)
	ids := &sequentialIDs{prefix: "id"}
	validator := validators.NewStructValidator()
	log := logger.Nop()

	env := &testEnv{storages: storages}

	auth := NewAuthService(storages.UserRepository, storages.CredentialStore, storages.SessionRepository, ids, app, log).(*authService)
	auth.clock = clk
	env.auth = auth

	users := NewUserService(storages.UserRepository, storages.CredentialStore, validator, ids, app, log).(*userService)
	users.clock = clk
	env.users = users

	bulletin := NewBulletinService(storages.BulletinRepository, storages.InteractionRepository, validator, ids, log).(*bulletinService)
	bulletin.clock = clk
	env.bulletin = bulletin

	helpdesk := NewHelpdeskService(storages.TicketRepository, storages.InteractionRepository, validator, ids, log).(*helpdeskService)
	helpdesk.clock = clk
	env.helpdesk = helpdesk

	reminders := NewReminderService(storages.ReminderRepository, validator, ids, log).(*reminderService)
	reminders.clock = clk
	reminders.location = time.UTC
	env.reminders = reminders

	food := NewFoodService(storages.FoodRepository, storages.InteractionRepository, validator, ids, log).(*foodService)
	food.clock = clk
	env.food = food

	mealPlan := NewMealPlanService(storages.MealPlanRepository, storages.FoodRepository, validator, log).(*mealPlanService)
	mealPlan.clock = clk
	mealPlan.location = time.UTC
	env.mealPlan = mealPlan

	wishlist := NewWishlistService(storages.WishlistRepository, storages.InteractionRepository, validator, ids, log).(*wishlistService)
	wishlist.clock = clk
	env.wishlist = wishlist

	info := NewInfoService(storages.InfoRepository, validator, log).(*infoService)
	info.clock = clk
	env.info = info

	env.admin = env.addUser(t, "admin", "Ada", "Admin", models.RoleAdmin, start)
	env.anna = env.addUser(t, "anna", "Anna", "Muster", models.RoleUser, start)
	env.ben = env.addUser(t, "ben", "Ben", "Keller", models.RoleUser, start)

	return env
}

// addUser stores a user whose password is testPassword.
func (e *testEnv) addUser(t *testing.T, id, first, last string, role models.Role, createdAt time.Time) models.User {
	t.Helper()

	hash, err := utils.HashPassword(testPassword)
	require.NoError(t, err)

	user := models.User{
		ID:        id,
		Email:     id + "@zivildienst.ch",
		FirstName: first,
		LastName:  last,
		Role:      role,
		CreatedAt: createdAt,
	}
	require.NoError(t, e.storages.UserRepository.CreateUser(context.Background(), user, hash))
	return user
}
