// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is a server-side login record. The signed token handed to the
// client only carries the session ID; the row decides whether it is still valid.
type Session struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

// Active reports whether the session can still authenticate requests at now.
func (s Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}

// LoginRequest holds login credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is returned after a successful login.
type LoginResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`

	// RequiresPasswordChange mirrors User.IsFirstLogin at login time.
	RequiresPasswordChange bool `json:"requires_password_change"`
}

// PasswordChange is the body of a password change request.
type PasswordChange struct {
	NewPassword     string `json:"new_password" validate:"required,min=6"`
	CurrentPassword string `json:"current_password,omitempty"`
}

// ProfilePictureUpdate is the body of a profile picture upload.
type ProfilePictureUpdate struct {
	ProfilePicture string `json:"profile_picture" validate:"required"`
}
