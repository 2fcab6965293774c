// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/zivi-portal/internal/app"
	"github.com/MKhiriev/zivi-portal/internal/service"
	"github.com/MKhiriev/zivi-portal/models"
)

func TestLogin(t *testing.T) {
	router, m := newMockedHandler(t)
	first := anna
	first.IsFirstLogin = true
	m.auth.EXPECT().Login(gomock.Any(), "anna@zivi.ch", "password123").
		Return(models.LoginResult{User: first, Token: "jwt", RequiresPasswordChange: true}, nil)

	rr := serve(t, router, http.MethodPost, "/api/auth/login", "",
		models.LoginRequest{Email: "anna@zivi.ch", Password: "password123"})

	require.Equal(t, http.StatusOK, rr.Code)
	result := decodeBody[models.LoginResult](t, rr)
	assert.Equal(t, "jwt", result.Token)
	assert.True(t, result.RequiresPasswordChange)
	assert.Equal(t, anna.ID, result.User.ID)
}

func TestLogin_WrongCredentials(t *testing.T) {
	router, m := newMockedHandler(t)
	m.auth.EXPECT().Login(gomock.Any(), "anna@zivi.ch", "nope").
		Return(models.LoginResult{}, service.ErrInvalidCredentials)

	rr := serve(t, router, http.MethodPost, "/api/auth/login", "",
		models.LoginRequest{Email: "anna@zivi.ch", Password: "nope"})

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, app.MsgInvalidLoginPassword, errorMessage(t, rr))
}

func TestLogout_RevokesCurrentSession(t *testing.T) {
	router, m := newMockedHandler(t)
	m.signedInAs(anna)
	m.auth.EXPECT().Logout(gomock.Any(), "s-"+anna.ID).Return(nil)

	rr := serve(t, router, http.MethodPost, "/api/auth/logout", validToken, nil)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestSession_ReturnsCurrentUser(t *testing.T) {
	router, m := newMockedHandler(t)
	first := anna
	first.IsFirstLogin = true
	m.signedInAs(first)

	rr := serve(t, router, http.MethodGet, "/api/auth/session", validToken, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	result := decodeBody[models.LoginResult](t, rr)
	assert.Equal(t, anna.Email, result.User.Email)
	assert.True(t, result.RequiresPasswordChange)
	assert.Empty(t, result.Token)
}

func TestSetFirstPassword(t *testing.T) {
	router, m := newMockedHandler(t)
	m.signedInAs(anna)
	m.auth.EXPECT().SetPasswordAfterFirstLogin(gomock.Any(), anna, "kurz").Return(models.User{}, service.ErrPasswordTooShort)
	m.auth.EXPECT().SetPasswordAfterFirstLogin(gomock.Any(), anna, "lang-genug").Return(anna, nil)

	rr := serve(t, router, http.MethodPost, "/api/auth/first-password", validToken, models.PasswordChange{NewPassword: "kurz"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgPasswordTooShort, errorMessage(t, rr))

	rr = serve(t, router, http.MethodPost, "/api/auth/first-password", validToken, models.PasswordChange{NewPassword: "lang-genug"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, anna.ID, decodeBody[models.User](t, rr).ID)
}
