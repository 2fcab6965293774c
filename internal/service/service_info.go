// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/zivi-portal/internal/logger"
	"github.com/MKhiriev/zivi-portal/internal/store"
	"github.com/MKhiriev/zivi-portal/internal/validators"
	"github.com/MKhiriev/zivi-portal/models"
)

type infoService struct {
	infoRepository store.InfoRepository
	validator      validators.Validator
	clock          clock

	logger *logger.Logger
}

func NewInfoService(info store.InfoRepository, validator validators.Validator, logger *logger.Logger) InfoService {
	return &infoService{
		infoRepository: info,
		validator:      validator,
		logger:         logger,
	}
}

// GetInfoPage returns the contact data and the duty schedule, Montag first.
func (s *infoService) GetInfoPage(ctx context.Context, actor models.User) (models.InfoPage, error) {
	if err := requireUser(actor); err != nil {
		return models.InfoPage{}, err
	}

	page, err := s.infoRepository.GetInfoPage(ctx)
	if err != nil {
		return models.InfoPage{}, fmt.Errorf("error loading info page: %w", err)
	}
	return page, nil
}

// UpdateInfoPage replaces the page. Only admins may edit it and the schedule
// must name each day of the week exactly once.
func (s *infoService) UpdateInfoPage(ctx context.Context, actor models.User, update models.InfoUpdate) (models.InfoPage, error) {
	if err := requireAdmin(actor); err != nil {
		return models.InfoPage{}, err
	}

	update = trimInfoUpdate(update)
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.InfoPage{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := checkScheduleDays(update.Schedule); err != nil {
		return models.InfoPage{}, err
	}

	page := models.InfoPage{
		Contact:   update.Contact,
		Schedule:  update.Schedule,
		UpdatedBy: actor.FullName(),
	}
	if err := s.infoRepository.UpdateInfoPage(ctx, page, s.clock.now()); err != nil {
		return models.InfoPage{}, fmt.Errorf("error updating info page: %w", err)
	}

	logger.FromContext(ctx).Info().Str("updated_by", actor.ID).Msg("info page updated")
	return s.GetInfoPage(ctx, actor)
}

func checkScheduleDays(schedule []models.DutyDay) error {
	seen := make(map[string]bool, len(schedule))
	for _, day := range schedule {
		if !slices.Contains(models.ScheduleDays, day.Day) {
			return fmt.Errorf("%w: unknown day %q", ErrInvalidDataProvided, day.Day)
		}
		if seen[day.Day] {
			return fmt.Errorf("%w: day %q listed twice", ErrInvalidDataProvided, day.Day)
		}
		seen[day.Day] = true
	}
	return nil
}

func trimInfoUpdate(update models.InfoUpdate) models.InfoUpdate {
	c := &update.Contact
	c.Phone = strings.TrimSpace(c.Phone)
	c.Email = strings.TrimSpace(c.Email)
	c.Address = strings.TrimSpace(c.Address)
	c.EmergencyPhone = strings.TrimSpace(c.EmergencyPhone)

	schedule := make([]models.DutyDay, len(update.Schedule))
	for i, day := range update.Schedule {
		schedule[i] = models.DutyDay{
			Day:       strings.TrimSpace(day.Day),
			Morning:   strings.TrimSpace(day.Morning),
			Afternoon: strings.TrimSpace(day.Afternoon),
		}
	}
	update.Schedule = schedule
	return update
}
