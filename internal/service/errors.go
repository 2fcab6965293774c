// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrWrongPassword       = errors.New("wrong password")
	ErrPasswordTooShort    = errors.New("password is too short")
	ErrNotFirstLogin       = errors.New("password was already set")
	ErrInvalidImage        = errors.New("invalid profile picture")

	ErrNotAuthenticated = errors.New("not authenticated")
	ErrAccessDenied     = errors.New("access denied")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrSessionRevoked          = errors.New("session is revoked or expired")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
