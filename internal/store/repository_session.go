// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/zivi-portal/internal/logger"
	"github.com/MKhiriev/zivi-portal/models"
)

type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the "sessions" table.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	_, err := r.db.exec(ctx, r.db, r.db.builder.Insert("sessions").
		Columns("id", "user_id", "created_at", "expires_at").
		Values(session.ID, session.UserID, session.CreatedAt.UTC(), session.ExpiresAt.UTC()))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error creating session")
		return err
	}
	return nil
}

// GetSession returns [ErrSessionNotFound] when the session does not exist.
// Revoked and expired sessions are returned as stored.
func (r *sessionRepository) GetSession(ctx context.Context, sessionID string) (models.Session, error) {
	log := logger.FromContext(ctx)

	row, err := r.db.queryRow(ctx, r.db, r.db.builder.
		Select("id", "user_id", "created_at", "expires_at", "revoked_at").
		From("sessions").
		Where(sq.Eq{"id": sessionID}))
	if err != nil {
		return models.Session{}, err
	}

	var (
		session   models.Session
		revokedAt *time.Time
	)
	err = row.Scan(&session.ID, &session.UserID, &session.CreatedAt, &session.ExpiresAt, &revokedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.GetSession").Msg("error scanning session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	session.RevokedAt = revokedAt

	return session, nil
}

// RevokeSession keeps the first revocation time when called twice.
func (r *sessionRepository) RevokeSession(ctx context.Context, sessionID string, at time.Time) error {
	_, err := r.db.exec(ctx, r.db, r.db.builder.Update("sessions").
		Set("revoked_at", at.UTC()).
		Where(sq.Eq{"id": sessionID, "revoked_at": nil}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.RevokeSession").Msg("error revoking session")
		return err
	}
	return nil
}

func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, before time.Time) (int64, error) {
	deleted, err := r.db.exec(ctx, r.db, r.db.builder.Delete("sessions").
		Where(sq.Lt{"expires_at": before.UTC()}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("error deleting expired sessions")
		return 0, err
	}
	return deleted, nil
}

const sessionCacheKeyPrefix = "session:"

// cachedSessionRepository keeps active sessions in a [SessionCache] so that
// authenticating a request does not hit the database. The cache entry lives
// until the session expires and is dropped on revocation.
type cachedSessionRepository struct {
	SessionRepository
	cache SessionCache
	now   func() time.Time
}

// NewCachedSessionRepository wraps next with a read-through session cache.
func NewCachedSessionRepository(next SessionRepository, cache SessionCache, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating cached session repository")
	return &cachedSessionRepository{
		SessionRepository: next,
		cache:             cache,
		now:               time.Now,
	}
}

func (r *cachedSessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	if err := r.SessionRepository.CreateSession(ctx, session); err != nil {
		return err
	}
	r.store(ctx, session)
	return nil
}

func (r *cachedSessionRepository) GetSession(ctx context.Context, sessionID string) (models.Session, error) {
	if cached, ok := r.cache.Get(ctx, sessionCacheKeyPrefix+sessionID); ok {
		var session models.Session
		if err := json.Unmarshal([]byte(cached), &session); err == nil {
			return session, nil
		}
		logger.FromContext(ctx).Warn().Str("func", "*cachedSessionRepository.GetSession").Msg("dropping malformed cache entry")
		r.cache.Delete(ctx, sessionCacheKeyPrefix+sessionID)
	}

	session, err := r.SessionRepository.GetSession(ctx, sessionID)
	if err != nil {
		return models.Session{}, err
	}
	r.store(ctx, session)
	return session, nil
}

// RevokeSession drops the cache entry after the database write, so a read
// racing the revocation cannot put the still-active row back.
func (r *cachedSessionRepository) RevokeSession(ctx context.Context, sessionID string, at time.Time) error {
	err := r.SessionRepository.RevokeSession(ctx, sessionID, at)
	r.cache.Delete(ctx, sessionCacheKeyPrefix+sessionID)
	return err
}

// store caches active sessions only.
func (r *cachedSessionRepository) store(ctx context.Context, session models.Session) {
	now := r.now()
	if !session.Active(now) {
		return
	}

	data, err := json.Marshal(session)
	if err != nil {
		return
	}
	r.cache.Set(ctx, sessionCacheKeyPrefix+session.ID, string(data), session.ExpiresAt.Sub(now))
}
