// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/zivi-portal/internal/interaction"
	"github.com/MKhiriev/zivi-portal/internal/logger"
	"github.com/MKhiriev/zivi-portal/internal/metrics"
	"github.com/MKhiriev/zivi-portal/internal/store"
	"github.com/MKhiriev/zivi-portal/internal/validators"
	"github.com/MKhiriev/zivi-portal/models"
)

type foodService struct {
	foodRepository        store.FoodRepository
	interactionRepository store.InteractionRepository
	validator             validators.Validator
	ids                   idGenerator
	clock                 clock

	logger *logger.Logger
}

func NewFoodService(food store.FoodRepository, interactions store.InteractionRepository,
	validator validators.Validator, ids idGenerator, logger *logger.Logger) FoodService {
	return &foodService{
		foodRepository:        food,
		interactionRepository: interactions,
		validator:             validator,
		ids:                   ids,
		logger:                logger,
	}
}

// ListFoodItems returns the items carrying tag, unread ones first, then by
// upvotes.
func (s *foodService) ListFoodItems(ctx context.Context, actor models.User, tag string) ([]models.FoodItem, error) {
	if err := requireUser(actor); err != nil {
		return nil, err
	}

	items, err := s.foodRepository.ListFoodItems(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing food items: %w", err)
	}

	items = interaction.Filter(items, func(item models.FoodItem) bool {
		return interaction.MatchesAny(item.DietaryTags, tag)
	})
	for i := range items {
		items[i].Interaction = interaction.Personalize(items[i].Interaction, actor.ID)
	}
	interaction.Sort(items, actor.ID, interaction.MostVotesFirst[models.FoodItem])

	return items, nil
}

func (s *foodService) CreateFoodItem(ctx context.Context, actor models.User, data models.NewFoodItem) (models.FoodItem, error) {
	if err := requireUser(actor); err != nil {
		return models.FoodItem{}, err
	}

	if err := interaction.Required("name", data.Name, "description", data.Description); err != nil {
		return models.FoodItem{}, err
	}
	if err := s.validator.Validate(ctx, data); err != nil {
		return models.FoodItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	tags := data.DietaryTags
	if tags == nil {
		tags = []string{}
	}

	item := models.FoodItem{
		Interaction: interaction.New(s.ids.Generate(), actor, s.clock.now()),
		Name:        strings.TrimSpace(data.Name),
		Description: strings.TrimSpace(data.Description),
		DietaryTags: tags,
	}
	if err := s.foodRepository.CreateFoodItem(ctx, item); err != nil {
		return models.FoodItem{}, fmt.Errorf("error creating food item: %w", err)
	}

	return item, nil
}

func (s *foodService) ViewFoodItem(ctx context.Context, actor models.User, itemID string) (models.FoodItem, error) {
	if err := requireUser(actor); err != nil {
		return models.FoodItem{}, err
	}

	item, err := s.getFoodItem(ctx, itemID, actor.ID)
	if err != nil {
		return models.FoodItem{}, err
	}

	now := s.clock.now()
	if err = s.interactionRepository.RecordView(ctx, models.KindFood, itemID, actor.ID, now); err != nil {
		return models.FoodItem{}, fmt.Errorf("error recording view: %w", err)
	}

	item.Interaction = interaction.View(item.Interaction, actor.ID, now)
	return item, nil
}

// VoteFoodItem toggles the actor's upvote.
func (s *foodService) VoteFoodItem(ctx context.Context, actor models.User, itemID string, direction models.Vote) (models.FoodItem, error) {
	if err := requireUser(actor); err != nil {
		return models.FoodItem{}, err
	}

	item, err := s.getFoodItem(ctx, itemID, actor.ID)
	if err != nil {
		return models.FoodItem{}, err
	}

	now := s.clock.now()
	old, next, err := s.interactionRepository.CastVote(ctx, models.KindFood, itemID, actor.ID, now,
		func(current models.Vote) (models.Vote, error) {
			return interaction.NextVote(current, direction, interaction.Toggle)
		})
	if err != nil {
		return models.FoodItem{}, fmt.Errorf("error casting vote: %w", err)
	}
	metrics.RecordVote(string(models.KindFood), string(next))

	// voting counts as viewing
	item.Tally = interaction.ApplyVote(item.Tally, old, next)
	item.Interaction = interaction.View(item.Interaction, actor.ID, now)
	return item, nil
}

func (s *foodService) getFoodItem(ctx context.Context, itemID, userID string) (models.FoodItem, error) {
	item, err := s.foodRepository.GetFoodItem(ctx, itemID, userID)
	if err != nil {
		return models.FoodItem{}, fmt.Errorf("error loading food item: %w", err)
	}
	item.Interaction = interaction.Personalize(item.Interaction, userID)
	return item, nil
}
