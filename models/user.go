// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Role is the authorization level of a portal account.
type Role string

const (
	// RoleAdmin may manage users and moderate wishlist items.
	RoleAdmin Role = "admin"
	// RoleUser is a regular civil-service member.
	RoleUser Role = "user"
)

// User represents a portal account.
// Credential material is never part of this record; see [store.CredentialStore].
type User struct {
	// ID is the server-assigned identifier (UUIDv7).
	ID string `json:"id"`

	// Email is unique ignoring case and is used as the login.
	Email string `json:"email"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      Role   `json:"role"`

	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`

	// IsFirstLogin is set for accounts created by an admin with a temporary
	// password. Such users must set their own password before anything else.
	IsFirstLogin bool `json:"is_first_login"`

	// ProfilePicture is a base64 data URI (image/jpeg or image/png).
	ProfilePicture string `json:"profile_picture,omitempty"`
}

// IsAdmin reports whether the user has admin rights.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// FullName returns "First Last", used as author name on records.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// NewUser is the admin-supplied data for creating an account.
type NewUser struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Role      Role   `json:"role" validate:"required,oneof=admin user"`
}

// CreatedUser is returned to the admin after account creation. It carries the
// temporary password the new user has to replace on first login.
type CreatedUser struct {
	User
	TemporaryPassword string `json:"temporary_password"`
}

// UserPatch is a partial update of a user record. Nil fields are left as is.
type UserPatch struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=1"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=1"`
	Role      *Role   `json:"role,omitempty" validate:"omitempty,oneof=admin user"`
}

// Apply merges the patch into u and returns the result.
func (p UserPatch) Apply(u User) User {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	return u
}
