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

type wishlistService struct {
	wishlistRepository    store.WishlistRepository
	interactionRepository store.InteractionRepository
	validator             validators.Validator
	ids                   idGenerator
	clock                 clock

	logger *logger.Logger
}

func NewWishlistService(wishlist store.WishlistRepository, interactions store.InteractionRepository,
	validator validators.Validator, ids idGenerator, logger *logger.Logger) WishlistService {
	return &wishlistService{
		wishlistRepository:    wishlist,
		interactionRepository: interactions,
		validator:             validator,
		ids:                   ids,
		logger:                logger,
	}
}

func (s *wishlistService) ListWishlistItems(ctx context.Context, actor models.User, status, category string) ([]models.WishlistItem, error) {
	if err := requireUser(actor); err != nil {
		return nil, err
	}

	items, err := s.wishlistRepository.ListWishlistItems(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing wishlist items: %w", err)
	}

	items = interaction.Filter(items, func(item models.WishlistItem) bool {
		return interaction.MatchesFilter(string(item.Status), status) &&
			interaction.MatchesFilter(item.Category, category)
	})
	for i := range items {
		items[i].Interaction = interaction.Personalize(items[i].Interaction, actor.ID)
	}
	interaction.Sort(items, actor.ID, interaction.MostVotesFirst[models.WishlistItem])

	return items, nil
}

func (s *wishlistService) CreateWishlistItem(ctx context.Context, actor models.User, data models.NewWishlistItem) (models.WishlistItem, error) {
	if err := requireUser(actor); err != nil {
		return models.WishlistItem{}, err
	}

	if err := interaction.Required("title", data.Title, "description", data.Description); err != nil {
		return models.WishlistItem{}, err
	}
	if err := s.validator.Validate(ctx, data); err != nil {
		return models.WishlistItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	category := data.Category
	if category == "" {
		category = models.DefaultWishlistCategory
	}

	item := models.WishlistItem{
		Interaction:   interaction.New(s.ids.Generate(), actor, s.clock.now()),
		Title:         strings.TrimSpace(data.Title),
		Description:   strings.TrimSpace(data.Description),
		Category:      category,
		EstimatedCost: strings.TrimSpace(data.EstimatedCost),
		Status:        models.WishlistPending,
	}
	if err := s.wishlistRepository.CreateWishlistItem(ctx, item); err != nil {
		return models.WishlistItem{}, fmt.Errorf("error creating wishlist item: %w", err)
	}

	return item, nil
}

func (s *wishlistService) ViewWishlistItem(ctx context.Context, actor models.User, itemID string) (models.WishlistItem, error) {
	if err := requireUser(actor); err != nil {
		return models.WishlistItem{}, err
	}

	item, err := s.getWishlistItem(ctx, itemID, actor.ID)
	if err != nil {
		return models.WishlistItem{}, err
	}

	now := s.clock.now()
	if err = s.interactionRepository.RecordView(ctx, models.KindWishlist, itemID, actor.ID, now); err != nil {
		return models.WishlistItem{}, fmt.Errorf("error recording view: %w", err)
	}

	item.Interaction = interaction.View(item.Interaction, actor.ID, now)
	return item, nil
}

// VoteWishlistItem toggles the actor's upvote.
func (s *wishlistService) VoteWishlistItem(ctx context.Context, actor models.User, itemID string, direction models.Vote) (models.WishlistItem, error) {
	if err := requireUser(actor); err != nil {
		return models.WishlistItem{}, err
	}

	item, err := s.getWishlistItem(ctx, itemID, actor.ID)
	if err != nil {
		return models.WishlistItem{}, err
	}

	now := s.clock.now()
	old, next, err := s.interactionRepository.CastVote(ctx, models.KindWishlist, itemID, actor.ID, now,
		func(current models.Vote) (models.Vote, error) {
			return interaction.NextVote(current, direction, interaction.Toggle)
		})
	if err != nil {
		return models.WishlistItem{}, fmt.Errorf("error casting vote: %w", err)
	}
	metrics.RecordVote(string(models.KindWishlist), string(next))

	// voting counts as viewing
	item.Tally = interaction.ApplyVote(item.Tally, old, next)
	item.Interaction = interaction.View(item.Interaction, actor.ID, now)
	return item, nil
}

// UpdateStatus is reserved for admins. Fulfilling stamps FulfilledAt,
// rejecting stores the reason. Any other status clears the reason.
func (s *wishlistService) UpdateStatus(ctx context.Context, actor models.User, itemID string, update models.WishlistStatusUpdate) (models.WishlistItem, error) {
	if err := requireAdmin(actor); err != nil {
		return models.WishlistItem{}, err
	}

	if err := s.validator.Validate(ctx, update); err != nil {
		return models.WishlistItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	item, err := s.wishlistRepository.GetWishlistItem(ctx, itemID, actor.ID)
	if err != nil {
		return models.WishlistItem{}, fmt.Errorf("error loading wishlist item: %w", err)
	}

	item.Status = update.Status
	item.RejectedReason = ""
	switch update.Status {
	case models.WishlistFulfilled:
		now := s.clock.now()
		item.FulfilledAt = &now
	case models.WishlistRejected:
		item.RejectedReason = strings.TrimSpace(update.RejectedReason)
	}

	if err = s.wishlistRepository.UpdateWishlistStatus(ctx, item); err != nil {
		logger.FromContext(ctx).Err(err).Str("item_id", itemID).Msg("wishlist status update failed")
		return models.WishlistItem{}, fmt.Errorf("error updating wishlist status: %w", err)
	}

	item.Interaction = interaction.Personalize(item.Interaction, actor.ID)
	return item, nil
}

func (s *wishlistService) getWishlistItem(ctx context.Context, itemID, userID string) (models.WishlistItem, error) {
	item, err := s.wishlistRepository.GetWishlistItem(ctx, itemID, userID)
	if err != nil {
		return models.WishlistItem{}, fmt.Errorf("error loading wishlist item: %w", err)
	}
	item.Interaction = interaction.Personalize(item.Interaction, userID)
	return item, nil
}
