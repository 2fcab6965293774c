// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt work factor used for stored credentials.
const PasswordHashCost = 10

// MaxProfilePictureSize is the largest accepted decoded profile picture, in bytes.
const MaxProfilePictureSize = 5 * 1024 * 1024

var (
	// ErrInvalidDataURI is returned when a profile picture is not a base64 data URI.
	ErrInvalidDataURI = errors.New("invalid data URI")
	// ErrUnsupportedImageType is returned for images other than JPEG or PNG.
	ErrUnsupportedImageType = errors.New("unsupported image type")
	// ErrImageTooLarge is returned when the decoded image exceeds MaxProfilePictureSize.
	ErrImageTooLarge = errors.New("image too large")
)

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
}

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the bcrypt hash.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidateImageDataURI checks that dataURI has the form
// "data:image/<jpeg|png>;base64,<payload>" and that the decoded payload
// is not larger than MaxProfilePictureSize.
func ValidateImageDataURI(dataURI string) error {
	rest, ok := strings.CutPrefix(dataURI, "data:")
	if !ok {
		return ErrInvalidDataURI
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return ErrInvalidDataURI
	}

	mediaType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return ErrInvalidDataURI
	}
	if _, allowed := allowedImageTypes[strings.ToLower(mediaType)]; !allowed {
		return fmt.Errorf("%w: %s", ErrUnsupportedImageType, mediaType)
	}

	if base64.StdEncoding.DecodedLen(len(payload)) > MaxProfilePictureSize+2 {
		return ErrImageTooLarge
	}
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataURI, err)
	}
	if len(decoded) > MaxProfilePictureSize {
		return ErrImageTooLarge
	}

	return nil
}
