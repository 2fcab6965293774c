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

type bulletinService struct {
	bulletinRepository    store.BulletinRepository
	interactionRepository store.InteractionRepository
	validator             validators.Validator
	ids                   idGenerator
	clock                 clock

	logger *logger.Logger
}

func NewBulletinService(posts store.BulletinRepository, interactions store.InteractionRepository,
	validator validators.Validator, ids idGenerator, logger *logger.Logger) BulletinService {
	return &bulletinService{
		bulletinRepository:    posts,
		interactionRepository: interactions,
		validator:             validator,
		ids:                   ids,
		logger:                logger,
	}
}

// ListPosts returns the posts of category, unread ones first, then newest first.
func (s *bulletinService) ListPosts(ctx context.Context, actor models.User, category string) ([]models.Post, error) {
	if err := requireUser(actor); err != nil {
		return nil, err
	}

	posts, err := s.bulletinRepository.ListPosts(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}

	posts = interaction.Filter(posts, func(p models.Post) bool {
		return interaction.MatchesFilter(p.Category, category)
	})
	for i := range posts {
		posts[i].Interaction = interaction.Personalize(posts[i].Interaction, actor.ID)
	}
	interaction.Sort(posts, actor.ID, interaction.NewestFirst[models.Post])

	return posts, nil
}

func (s *bulletinService) CreatePost(ctx context.Context, actor models.User, data models.NewPost) (models.Post, error) {
	if err := requireUser(actor); err != nil {
		return models.Post{}, err
	}

	if err := interaction.Required("title", data.Title, "content", data.Content); err != nil {
		return models.Post{}, err
	}
	if err := s.validator.Validate(ctx, data); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	category := data.Category
	if category == "" {
		category = models.DefaultBulletinCategory
	}

	post := models.Post{
		Interaction: interaction.New(s.ids.Generate(), actor, s.clock.now()),
		Title:       strings.TrimSpace(data.Title),
		Content:     strings.TrimSpace(data.Content),
		Category:    category,
	}
	if err := s.bulletinRepository.CreatePost(ctx, post); err != nil {
		return models.Post{}, fmt.Errorf("error creating post: %w", err)
	}

	return post, nil
}

func (s *bulletinService) ViewPost(ctx context.Context, actor models.User, postID string) (models.Post, error) {
	if err := requireUser(actor); err != nil {
		return models.Post{}, err
	}

	post, err := s.getPost(ctx, postID, actor.ID)
	if err != nil {
		return models.Post{}, err
	}

	now := s.clock.now()
	if err = s.interactionRepository.RecordView(ctx, models.KindBulletin, postID, actor.ID, now); err != nil {
		return models.Post{}, fmt.Errorf("error recording view: %w", err)
	}

	post.Interaction = interaction.View(post.Interaction, actor.ID, now)
	return post, nil
}

// VotePost applies a tri-state vote: repeating a direction withdraws it,
// the other direction switches it.
func (s *bulletinService) VotePost(ctx context.Context, actor models.User, postID string, direction models.Vote) (models.Post, error) {
	if err := requireUser(actor); err != nil {
		return models.Post{}, err
	}

	post, err := s.getPost(ctx, postID, actor.ID)
	if err != nil {
		return models.Post{}, err
	}

	now := s.clock.now()
	old, next, err := s.interactionRepository.CastVote(ctx, models.KindBulletin, postID, actor.ID, now,
		func(current models.Vote) (models.Vote, error) {
			return interaction.NextVote(current, direction, interaction.TriState)
		})
	if err != nil {
		return models.Post{}, fmt.Errorf("error casting vote: %w", err)
	}
	metrics.RecordVote(string(models.KindBulletin), string(next))

	// voting counts as viewing
	post.Tally = interaction.ApplyVote(post.Tally, old, next)
	post.Interaction = interaction.View(post.Interaction, actor.ID, now)
	return post, nil
}

func (s *bulletinService) getPost(ctx context.Context, postID, userID string) (models.Post, error) {
	post, err := s.bulletinRepository.GetPost(ctx, postID, userID)
	if err != nil {
		return models.Post{}, fmt.Errorf("error loading post: %w", err)
	}
	post.Interaction = interaction.Personalize(post.Interaction, userID)
	return post, nil
}
