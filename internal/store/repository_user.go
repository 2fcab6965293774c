// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/zivi-portal/internal/logger"
	"github.com/MKhiriev/zivi-portal/models"
)

var userColumns = []string{
	"id", "email", "first_name", "last_name", "role",
	"created_at", "last_login", "is_first_login", "profile_picture",
}

// userRepository is the SQL implementation of both [UserRepository] and
// [CredentialStore]. Users and credentials live in separate tables but are
// always written together on account creation.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// NewCredentialStore constructs a [CredentialStore] backed by the "credentials" table.
func NewCredentialStore(db *DB, logger *logger.Logger) CredentialStore {
	logger.Debug().Msg("creating credential store")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// emailKey is the value of the unique users.email_key column.
func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user      models.User
		role      string
		lastLogin *time.Time
	)
	err := row.Scan(&user.ID, &user.Email, &user.FirstName, &user.LastName, &role,
		&user.CreatedAt, &lastLogin, &user.IsFirstLogin, &user.ProfilePicture)
	if err != nil {
		return models.User{}, err
	}
	user.Role = models.Role(role)
	user.LastLogin = lastLogin
	return user, nil
}

// CreateUser inserts the user row and its credential row in one transaction.
//
// Error handling:
//   - unique violation on email_key → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User, passwordHash string) error {
	log := logger.FromContext(ctx)

	insertUser := r.db.builder.Insert("users").
		Columns("id", "email", "email_key", "first_name", "last_name", "role",
			"created_at", "is_first_login", "profile_picture").
		Values(user.ID, user.Email, emailKey(user.Email), user.FirstName, user.LastName, string(user.Role),
			user.CreatedAt.UTC(), user.IsFirstLogin, user.ProfilePicture)

	insertCredential := r.db.builder.Insert("credentials").
		Columns("user_id", "password_hash", "updated_at").
		Values(user.ID, passwordHash, user.CreatedAt.UTC())

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := r.db.exec(ctx, tx, insertUser); err != nil {
			if r.db.isUniqueViolation(err) {
				return ErrEmailAlreadyExists
			}
			return err
		}
		_, err := r.db.exec(ctx, tx, insertCredential)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		return err
	}

	return nil
}

// GetUserByID returns [ErrUserNotFound] when no user has the given ID.
func (r *userRepository) GetUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.getUser(ctx, "*userRepository.GetUserByID", sq.Eq{"id": userID})
}

// GetUserByEmail returns [ErrUserNotFound] when no user has the given email
// ignoring case.
func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.getUser(ctx, "*userRepository.GetUserByEmail", sq.Eq{"email_key": emailKey(email)})
}

func (r *userRepository) getUser(ctx context.Context, funcName string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	row, err := r.db.queryRow(ctx, r.db, r.db.builder.Select(userColumns...).From("users").Where(where))
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return models.User{}, err
	}

	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// ListUsers returns every user ordered by last name, then first name.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.query(ctx, r.db, r.db.builder.Select(userColumns...).From("users").
		OrderBy("last_name", "first_name", "id"))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error querying users")
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error scanning user")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// CountUsers is used at startup to decide whether the admin account must be seeded.
func (r *userRepository) CountUsers(ctx context.Context) (int, error) {
	row, err := r.db.queryRow(ctx, r.db, r.db.builder.Select("COUNT(*)").From("users"))
	if err != nil {
		return 0, err
	}

	var count int
	if err = row.Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.CountUsers").Msg("error counting users")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return count, nil
}

// UpdateUser overwrites the editable fields of the user.
//
// Error handling:
//   - unique violation on email_key → [ErrEmailAlreadyExists].
//   - no row updated → [ErrUserNotFound].
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	update := r.db.builder.Update("users").
		Set("email", user.Email).
		Set("email_key", emailKey(user.Email)).
		Set("first_name", user.FirstName).
		Set("last_name", user.LastName).
		Set("role", string(user.Role)).
		Set("profile_picture", user.ProfilePicture).
		Where(sq.Eq{"id": user.ID})

	affected, err := r.db.exec(ctx, r.db, update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error updating user")
		if r.db.isUniqueViolation(err) {
			return ErrEmailAlreadyExists
		}
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	affected, err := r.db.exec(ctx, r.db, r.db.builder.Update("users").
		Set("last_login", at.UTC()).
		Where(sq.Eq{"id": userID}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.UpdateLastLogin").Msg("error updating last login")
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// DeleteUser relies on ON DELETE CASCADE to drop credentials, sessions and
// the user's views, votes, reminders and payments.
func (r *userRepository) DeleteUser(ctx context.Context, userID string) error {
	affected, err := r.db.exec(ctx, r.db, r.db.builder.Delete("users").Where(sq.Eq{"id": userID}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.DeleteUser").Msg("error deleting user")
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// GetPasswordHash returns [ErrCredentialNotFound] when the user has no credential row.
func (r *userRepository) GetPasswordHash(ctx context.Context, userID string) (string, error) {
	row, err := r.db.queryRow(ctx, r.db, r.db.builder.Select("password_hash").From("credentials").
		Where(sq.Eq{"user_id": userID}))
	if err != nil {
		return "", err
	}

	var hash string
	err = row.Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrCredentialNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.GetPasswordHash").Msg("error scanning credential")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return hash, nil
}

// SetPasswordHash replaces the stored hash. It returns [ErrCredentialNotFound]
// when the user has no credential row.
func (r *userRepository) SetPasswordHash(ctx context.Context, userID, passwordHash string, at time.Time) error {
	return r.setPasswordHash(ctx, r.db, userID, passwordHash, at)
}

func (r *userRepository) setPasswordHash(ctx context.Context, q querier, userID, passwordHash string, at time.Time) error {
	affected, err := r.db.exec(ctx, q, r.db.builder.Update("credentials").
		Set("password_hash", passwordHash).
		Set("updated_at", at.UTC()).
		Where(sq.Eq{"user_id": userID}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.setPasswordHash").Msg("error updating credential")
		return err
	}
	if affected == 0 {
		return ErrCredentialNotFound
	}
	return nil
}

func (r *userRepository) CompleteFirstLogin(ctx context.Context, userID, passwordHash string, at time.Time) error {
	return r.db.inTx(ctx, func(tx *sql.Tx) error {
		if err := r.setPasswordHash(ctx, tx, userID, passwordHash, at); err != nil {
			return err
		}

		affected, err := r.db.exec(ctx, tx, r.db.builder.Update("users").
			Set("is_first_login", false).
			Where(sq.Eq{"id": userID}))
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}
