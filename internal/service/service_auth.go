// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/zivi-portal/internal/config"
	"github.com/MKhiriev/zivi-portal/internal/logger"
	"github.com/MKhiriev/zivi-portal/internal/metrics"
	"github.com/MKhiriev/zivi-portal/internal/store"
	"github.com/MKhiriev/zivi-portal/internal/utils"
	"github.com/MKhiriev/zivi-portal/models"
)

// minPasswordLength applies to every password a user chooses.
const minPasswordLength = 6

// authService is the concrete implementation of AuthService.
// Sessions are rows in the session repository; the signed token only names
// the row, so revoking the row ends the session even if the token has not
// expired yet.
type authService struct {
	userRepository    store.UserRepository
	credentialStore   store.CredentialStore
	sessionRepository store.SessionRepository
	ids               idGenerator
	clock             clock

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	tokenIssuer string

	// tokenDuration is the lifetime of a session and of its token.
	tokenDuration time.Duration

	adminEmail    string
	adminPassword string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the repositories and the
// token parameters in cfg.
func NewAuthService(users store.UserRepository, credentials store.CredentialStore, sessions store.SessionRepository,
	ids idGenerator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    users,
		credentialStore:   credentials,
		sessionRepository: sessions,
		ids:               ids,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		adminEmail:        cfg.AdminEmail,
		adminPassword:     cfg.AdminPassword,
		logger:            logger,
	}
}

// Login authenticates a user by email and password.
//
// The email lookup ignores case. Any mismatch (unknown email, missing
// credential, wrong password) yields ErrInvalidCredentials and leaves the
// account untouched. On success LastLogin is stamped and a new session is
// stored.
func (a *authService) Login(ctx context.Context, email, password string) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	result, err := a.login(ctx, email, password)
	metrics.RecordLogin(err == nil)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			log.Warn().Str("email", email).Msg("login rejected")
		} else {
			log.Err(err).Str("email", email).Msg("login failed")
		}
		return models.LoginResult{}, err
	}

	log.Info().Str("user_id", result.User.ID).Msg("user logged in")
	return result, nil
}

func (a *authService) login(ctx context.Context, email, password string) (models.LoginResult, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return models.LoginResult{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	hash, err := a.credentialStore.GetPasswordHash(ctx, user.ID)
	if errors.Is(err, store.ErrCredentialNotFound) {
		return models.LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("credential lookup failed: %w", err)
	}

	if !utils.VerifyPassword(hash, password) {
		return models.LoginResult{}, ErrInvalidCredentials
	}

	now := a.clock.now()
	session := models.Session{
		ID:        a.ids.Generate(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(a.tokenDuration),
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, session.ID, now, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err = a.sessionRepository.CreateSession(ctx, session); err != nil {
		return models.LoginResult{}, fmt.Errorf("session creation failed: %w", err)
	}

	if err = a.userRepository.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return models.LoginResult{}, fmt.Errorf("last login update failed: %w", err)
	}
	user.LastLogin = &now

	return models.LoginResult{
		User:                   user,
		Token:                  token.String(),
		RequiresPasswordChange: user.IsFirstLogin,
	}, nil
}

// Logout revokes the session. Revoking an unknown or already revoked session
// is not an error.
func (a *authService) Logout(ctx context.Context, sessionID string) error {
	err := a.sessionRepository.RevokeSession(ctx, sessionID, a.clock.now())
	if err != nil && !errors.Is(err, store.ErrSessionNotFound) {
		logger.FromContext(ctx).Err(err).Str("session_id", sessionID).Msg("session revocation failed")
		return fmt.Errorf("session revocation failed: %w", err)
	}
	return nil
}

// Authenticate verifies the token signature and issuer, then loads the session
// it names. The session must be active and belong to the token's subject.
// The user is loaded fresh so role changes apply immediately.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, models.Session, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.User{}, models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	session, err := a.sessionRepository.GetSession(ctx, token.SessionID)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.User{}, models.Session{}, ErrSessionRevoked
	}
	if err != nil {
		return models.User{}, models.Session{}, fmt.Errorf("session lookup failed: %w", err)
	}

	if session.UserID != token.UserID {
		return models.User{}, models.Session{}, ErrTokenIsExpiredOrInvalid
	}
	if !session.Active(a.clock.now()) {
		return models.User{}, models.Session{}, ErrSessionRevoked
	}

	user, err := a.userRepository.GetUserByID(ctx, session.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, models.Session{}, ErrSessionRevoked
	}
	if err != nil {
		return models.User{}, models.Session{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, session, nil
}

// SetPasswordAfterFirstLogin replaces the temporary password of an account
// created by an admin and clears its first-login flag.
func (a *authService) SetPasswordAfterFirstLogin(ctx context.Context, actor models.User, newPassword string) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := requireUser(actor); err != nil {
		return models.User{}, err
	}

	current, err := a.userRepository.GetUserByID(ctx, actor.ID)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}
	if !current.IsFirstLogin {
		return models.User{}, ErrNotFirstLogin
	}
	if len(newPassword) < minPasswordLength {
		return models.User{}, ErrPasswordTooShort
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return models.User{}, err
	}

	if err = a.credentialStore.CompleteFirstLogin(ctx, actor.ID, hash, a.clock.now()); err != nil {
		log.Err(err).Str("user_id", actor.ID).Msg("first password could not be stored")
		return models.User{}, fmt.Errorf("first password could not be stored: %w", err)
	}

	current.IsFirstLogin = false
	return current, nil
}

// SeedAdmin creates the configured administrator when the user table is empty.
// The seeded account does not have to change its password.
func (a *authService) SeedAdmin(ctx context.Context) error {
	log := logger.FromContext(ctx)

	count, err := a.userRepository.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("error counting users: %w", err)
	}
	if count > 0 {
		return nil
	}

	if a.adminEmail == "" || a.adminPassword == "" {
		return fmt.Errorf("%w: admin credentials are not configured", ErrInvalidDataProvided)
	}

	hash, err := utils.HashPassword(a.adminPassword)
	if err != nil {
		return err
	}

	admin := models.User{
		ID:        a.ids.Generate(),
		Email:     a.adminEmail,
		FirstName: "System",
		LastName:  "Administrator",
		Role:      models.RoleAdmin,
		CreatedAt: a.clock.now(),
	}
	if err = a.userRepository.CreateUser(ctx, admin, hash); err != nil {
		return fmt.Errorf("error seeding admin: %w", err)
	}

	log.Info().Str("email", admin.Email).Msg("seeded admin account")
	return nil
}

func (a *authService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	return a.sessionRepository.DeleteExpiredSessions(ctx, a.clock.now())
}
