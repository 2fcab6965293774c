// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrInvalidStorageConfigs is returned when no database DSN is configured.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrUnsupportedDriver is returned for a database driver other than pgx or sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
	// ErrInvalidAppConfigs is returned when the token sign key is missing.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs is returned for negative durations.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
