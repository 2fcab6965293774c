// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/zivi-portal/internal/config"
	"github.com/MKhiriev/zivi-portal/internal/logger"
	"github.com/MKhiriev/zivi-portal/internal/store"
	"github.com/MKhiriev/zivi-portal/internal/utils"
	"github.com/MKhiriev/zivi-portal/internal/validators"
	"github.com/MKhiriev/zivi-portal/models"
)

type Services struct {
	AuthService     AuthService
	UserService     UserService
	BulletinService BulletinService
	HelpdeskService HelpdeskService
	ReminderService ReminderService
	FoodService     FoodService
	MealPlanService MealPlanService
	WishlistService WishlistService
	InfoService     InfoService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, validator validators.Validator, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	ids := utils.NewUUIDGenerator()

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, storages.CredentialStore, storages.SessionRepository, ids, cfg.App, logger),
		UserService:     NewUserService(storages.UserRepository, storages.CredentialStore, validator, ids, cfg.App, logger),
		BulletinService: NewBulletinService(storages.BulletinRepository, storages.InteractionRepository, validator, ids, logger),
		HelpdeskService: NewHelpdeskService(storages.TicketRepository, storages.InteractionRepository, validator, ids, logger),
		ReminderService: NewReminderService(storages.ReminderRepository, validator, ids, logger),
		FoodService:     NewFoodService(storages.FoodRepository, storages.InteractionRepository, validator, ids, logger),
		MealPlanService: NewMealPlanService(storages.MealPlanRepository, storages.FoodRepository, validator, logger),
		WishlistService: NewWishlistService(storages.WishlistRepository, storages.InteractionRepository, validator, ids, logger),
		InfoService:     NewInfoService(storages.InfoRepository, validator, logger),
		AppInfoService:  appInfoService,
	}, nil
}

// idGenerator issues identifiers for new records and sessions.
type idGenerator interface {
	Generate() string
}

// clock is swapped in tests.
type clock func() time.Time

func (c clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

func requireUser(actor models.User) error {
	if actor.ID == "" {
		return ErrNotAuthenticated
	}
	return nil
}

func requireAdmin(actor models.User) error {
	if err := requireUser(actor); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return ErrAccessDenied
	}
	return nil
}
