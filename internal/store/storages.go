// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/zivi-portal/internal/config"
	"github.com/MKhiriev/zivi-portal/internal/logger"
)

// Storages bundles every repository used by the service layer.
type Storages struct {
	UserRepository        UserRepository
	CredentialStore       CredentialStore
	SessionRepository     SessionRepository
	InteractionRepository InteractionRepository
	BulletinRepository    BulletinRepository
	TicketRepository      TicketRepository
	ReminderRepository    ReminderRepository
	FoodRepository        FoodRepository
	MealPlanRepository    MealPlanRepository
	WishlistRepository    WishlistRepository
	InfoRepository        InfoRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories. When sessionCache is not nil the session
// repository is wrapped with it.
func NewStorages(ctx context.Context, cfg config.Storage, sessionCache SessionCache, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return newStorages(db, sessionCache, log), nil
}

func newStorages(db *DB, sessionCache SessionCache, log *logger.Logger) *Storages {
	sessions := NewSessionRepository(db, log)
	if sessionCache != nil {
		sessions = NewCachedSessionRepository(sessions, sessionCache, log)
	}

	return &Storages{
		UserRepository:        NewUserRepository(db, log),
		CredentialStore:       NewCredentialStore(db, log),
		SessionRepository:     sessions,
		InteractionRepository: NewInteractionRepository(db, log),
		BulletinRepository:    NewBulletinRepository(db, log),
		TicketRepository:      NewTicketRepository(db, log),
		ReminderRepository:    NewReminderRepository(db, log),
		FoodRepository:        NewFoodRepository(db, log),
		MealPlanRepository:    NewMealPlanRepository(db, log),
		WishlistRepository:    NewWishlistRepository(db, log),
		InfoRepository:        NewInfoRepository(db, log),
		db:                    db,
	}
}

// Close closes the database connection pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
