// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/zivi-portal/internal/store"
	"github.com/MKhiriev/zivi-portal/internal/utils"
	"github.com/MKhiriev/zivi-portal/models"
)

var usersStart = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T {
	return &v
}

func TestCreateUser(t *testing.T) {
	env := newTestEnv(t, usersStart)
	ctx := context.Background()
	data := models.NewUser{Email: " eva@zivildienst.ch ", FirstName: "Eva", LastName: "Neu", Role: models.RoleUser}

	_, err := env.users.CreateUser(ctx, env.anna, data)
	assert.ErrorIs(t, err, ErrAccessDenied)

	created, err := env.users.CreateUser(ctx, env.admin, data)
	require.NoError(t, err)
	assert.Equal(t, "password123", created.TemporaryPassword)
	assert.Equal(t, "eva@zivildienst.ch", created.Email)
	assert.True(t, created.IsFirstLogin)
	assert.NotEmpty(t, created.ID)

	hash, err := env.storages.CredentialStore.GetPasswordHash(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, utils.VerifyPassword(hash, "password123"))

	data.Email = "EVA@Zivildienst.ch"
	_, err = env.users.CreateUser(ctx, env.admin, data)
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestCreateUser_InvalidData(t *testing.T) {
	env := newTestEnv(t, usersStart)

	for name, data := range map[string]models.NewUser{
		"bad email":  {Email: "kein-email", FirstName: "A", LastName: "B", Role: models.RoleUser},
		"no name":    {Email: "x@zivildienst.ch", LastName: "B", Role: models.RoleUser},
		"bad role":   {Email: "x@zivildienst.ch", FirstName: "A", LastName: "B", Role: "root"},
		"empty role": {Email: "x@zivildienst.ch", FirstName: "A", LastName: "B"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := env.users.CreateUser(context.Background(), env.admin, data)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestListUsers_AdminOnly(t *testing.T) {
	env := newTestEnv(t, usersStart)
	ctx := context.Background()

	_, err := env.users.ListUsers(ctx, env.ben)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = env.users.ListUsers(ctx, models.User{})
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	users, err := env.users.ListUsers(ctx, env.admin)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestUpdateUser(t *testing.T) {
	env := newTestEnv(t, usersStart)
	ctx := context.Background()

	updated, err := env.users.UpdateUser(ctx, env.anna, env.anna.ID, models.UserPatch{FirstName: ptr("Annika")})
	require.NoError(t, err)
	assert.Equal(t, "Annika", updated.FirstName)
	assert.Equal(t, "Muster", updated.LastName)

	// same role is not a change
	_, err = env.users.UpdateUser(ctx, env.anna, env.anna.ID, models.UserPatch{Role: ptr(models.RoleUser)})
	assert.NoError(t, err)

	_, err = env.users.UpdateUser(ctx, env.anna, env.anna.ID, models.UserPatch{Role: ptr(models.RoleAdmin)})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = env.users.UpdateUser(ctx, env.anna, env.ben.ID, models.UserPatch{FirstName: ptr("Benno")})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = env.users.UpdateUser(ctx, env.anna, env.anna.ID, models.UserPatch{Email: ptr("BEN@zivildienst.ch")})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)

	_, err = env.users.UpdateUser(ctx, env.anna, env.anna.ID, models.UserPatch{Email: ptr("kaputt")})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	promoted, err := env.users.UpdateUser(ctx, env.admin, env.ben.ID, models.UserPatch{Role: ptr(models.RoleAdmin)})
	require.NoError(t, err)
	assert.True(t, promoted.IsAdmin())

	_, err = env.users.UpdateUser(ctx, env.admin, "missing", models.UserPatch{FirstName: ptr("X")})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	env := newTestEnv(t, usersStart)
	ctx := context.Background()

	assert.ErrorIs(t, env.users.DeleteUser(ctx, env.anna, env.ben.ID), ErrAccessDenied)

	require.NoError(t, env.users.DeleteUser(ctx, env.admin, env.ben.ID))

	_, err := env.storages.UserRepository.GetUserByID(ctx, env.ben.ID)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	_, err = env.storages.CredentialStore.GetPasswordHash(ctx, env.ben.ID)
	assert.ErrorIs(t, err, store.ErrCredentialNotFound)

	assert.ErrorIs(t, env.users.DeleteUser(ctx, env.admin, env.ben.ID), store.ErrUserNotFound)
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t, usersStart)
	ctx := context.Background()

	verify := func(userID, password string) bool {
		hash, err := env.storages.CredentialStore.GetPasswordHash(ctx, userID)
		require.NoError(t, err)
		return utils.VerifyPassword(hash, password)
	}

	err := env.users.ChangePassword(ctx, env.anna, env.anna.ID, models.PasswordChange{NewPassword: "neues-passwort"})
	assert.ErrorIs(t, err, ErrWrongPassword, "current password is required")

	err = env.users.ChangePassword(ctx, env.anna, env.anna.ID,
		models.PasswordChange{NewPassword: "neues-passwort", CurrentPassword: "falsch"})
	assert.ErrorIs(t, err, ErrWrongPassword)

	err = env.users.ChangePassword(ctx, env.anna, env.anna.ID,
		models.PasswordChange{NewPassword: "12345", CurrentPassword: testPassword})
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	err = env.users.ChangePassword(ctx, env.anna, env.ben.ID,
		models.PasswordChange{NewPassword: "neues-passwort", CurrentPassword: testPassword})
	assert.ErrorIs(t, err, ErrAccessDenied)

	assert.True(t, verify(env.anna.ID, testPassword), "failed attempts keep the old password")

	err = env.users.ChangePassword(ctx, env.anna, env.anna.ID,
		models.PasswordChange{NewPassword: "neues-passwort", CurrentPassword: testPassword})
	require.NoError(t, err)
	assert.True(t, verify(env.anna.ID, "neues-passwort"))

	// admins need no current password
	err = env.users.ChangePassword(ctx, env.admin, env.ben.ID, models.PasswordChange{NewPassword: "vom-admin"})
	require.NoError(t, err)
	assert.True(t, verify(env.ben.ID, "vom-admin"))

	err = env.users.ChangePassword(ctx, env.admin, "missing", models.PasswordChange{NewPassword: "vom-admin"})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUpdateProfilePicture(t *testing.T) {
	env := newTestEnv(t, usersStart)
	ctx := context.Background()
	png := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("\x89PNG fake"))

	updated, err := env.users.UpdateProfilePicture(ctx, env.anna, env.anna.ID, png)
	require.NoError(t, err)
	assert.Equal(t, png, updated.ProfilePicture)

	stored, err := env.storages.UserRepository.GetUserByID(ctx, env.anna.ID)
	require.NoError(t, err)
	assert.Equal(t, png, stored.ProfilePicture)

	_, err = env.users.UpdateProfilePicture(ctx, env.anna, env.anna.ID, "data:image/gif;base64,R0lGOD==")
	assert.ErrorIs(t, err, ErrInvalidImage)

	_, err = env.users.UpdateProfilePicture(ctx, env.anna, env.ben.ID, png)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = env.users.UpdateProfilePicture(ctx, env.admin, env.ben.ID, png)
	assert.NoError(t, err)
}
