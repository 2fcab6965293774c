// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/zivi-portal/internal/config"
	"github.com/MKhiriev/zivi-portal/internal/logger"
	"github.com/MKhiriev/zivi-portal/internal/store"
	"github.com/MKhiriev/zivi-portal/internal/utils"
	"github.com/MKhiriev/zivi-portal/internal/validators"
	"github.com/MKhiriev/zivi-portal/models"
)

type userService struct {
	userRepository  store.UserRepository
	credentialStore store.CredentialStore
	validator       validators.Validator
	ids             idGenerator
	clock           clock

	// defaultPassword is handed to every account an admin creates.
	defaultPassword string

	logger *logger.Logger
}

func NewUserService(users store.UserRepository, credentials store.CredentialStore, validator validators.Validator,
	ids idGenerator, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository:  users,
		credentialStore: credentials,
		validator:       validator,
		ids:             ids,
		defaultPassword: cfg.DefaultPassword,
		logger:          logger,
	}
}

func (s *userService) ListUsers(ctx context.Context, actor models.User) ([]models.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return users, nil
}

// CreateUser adds an account with the default temporary password. The new
// user has to choose a password at first login.
func (s *userService) CreateUser(ctx context.Context, actor models.User, data models.NewUser) (models.CreatedUser, error) {
	log := logger.FromContext(ctx)

	if err := requireAdmin(actor); err != nil {
		return models.CreatedUser{}, err
	}

	data.Email = strings.TrimSpace(data.Email)
	if err := s.validator.Validate(ctx, data); err != nil {
		return models.CreatedUser{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := utils.HashPassword(s.defaultPassword)
	if err != nil {
		return models.CreatedUser{}, err
	}

	user := models.User{
		ID:           s.ids.Generate(),
		Email:        data.Email,
		FirstName:    strings.TrimSpace(data.FirstName),
		LastName:     strings.TrimSpace(data.LastName),
		Role:         data.Role,
		CreatedAt:    s.clock.now(),
		IsFirstLogin: true,
	}
	if err = s.userRepository.CreateUser(ctx, user, hash); err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.CreatedUser{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", user.ID).Str("by", actor.ID).Msg("user created")
	return models.CreatedUser{User: user, TemporaryPassword: s.defaultPassword}, nil
}

// UpdateUser merges patch into the stored user. Admins may edit anyone;
// everyone else only themselves and never their own role.
func (s *userService) UpdateUser(ctx context.Context, actor models.User, userID string, patch models.UserPatch) (models.User, error) {
	if err := s.requireSelfOrAdmin(actor, userID); err != nil {
		return models.User{}, err
	}

	if err := s.validator.Validate(ctx, patch); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	current, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if !actor.IsAdmin() && patch.Role != nil && *patch.Role != current.Role {
		return models.User{}, ErrAccessDenied
	}

	updated := patch.Apply(current)
	updated.Email = strings.TrimSpace(updated.Email)
	if err = s.userRepository.UpdateUser(ctx, updated); err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	return updated, nil
}

// DeleteUser removes the account together with its credential and sessions.
func (s *userService) DeleteUser(ctx context.Context, actor models.User, userID string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("user deletion failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("user_id", userID).Str("by", actor.ID).Msg("user deleted")
	return nil
}

// ChangePassword sets a new password. Admins change any password without
// further checks. Other users change only their own and must confirm the
// current one.
func (s *userService) ChangePassword(ctx context.Context, actor models.User, userID string, change models.PasswordChange) error {
	if err := s.requireSelfOrAdmin(actor, userID); err != nil {
		return err
	}

	if len(change.NewPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}
	if err := s.validator.Validate(ctx, change); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, err := s.userRepository.GetUserByID(ctx, userID); err != nil {
		return fmt.Errorf("user lookup failed: %w", err)
	}

	if !actor.IsAdmin() {
		if change.CurrentPassword == "" {
			return ErrWrongPassword
		}
		hash, err := s.credentialStore.GetPasswordHash(ctx, userID)
		if err != nil {
			return fmt.Errorf("credential lookup failed: %w", err)
		}
		if !utils.VerifyPassword(hash, change.CurrentPassword) {
			return ErrWrongPassword
		}
	}

	hash, err := utils.HashPassword(change.NewPassword)
	if err != nil {
		return err
	}
	if err = s.credentialStore.SetPasswordHash(ctx, userID, hash, s.clock.now()); err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}

func (s *userService) UpdateProfilePicture(ctx context.Context, actor models.User, userID, dataURI string) (models.User, error) {
	if err := s.requireSelfOrAdmin(actor, userID); err != nil {
		return models.User{}, err
	}

	if err := utils.ValidateImageDataURI(dataURI); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	user.ProfilePicture = dataURI
	if err = s.userRepository.UpdateUser(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("profile picture update failed: %w", err)
	}

	return user, nil
}

func (s *userService) requireSelfOrAdmin(actor models.User, userID string) error {
	if err := requireUser(actor); err != nil {
		return err
	}
	if !actor.IsAdmin() && actor.ID != userID {
		return ErrAccessDenied
	}
	return nil
}
