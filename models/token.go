// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a session JWT.
//
// The "sub" claim holds the user ID and the "jti" claim holds the session ID.
// SignedString is the compact serialized form sent to the client.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`

	// UserID and SessionID are parsed copies of "sub" and "jti".
	UserID    string `json:"-"`
	SessionID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
