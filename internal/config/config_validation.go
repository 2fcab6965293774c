// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

func (cfg *StructuredConfig) validate() error {
	var err error

	if cfg.Storage.DB.DSN == "" {
		err = errors.Join(err, ErrInvalidStorageConfigs)
	}
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite, "":
	default:
		err = errors.Join(err, ErrUnsupportedDriver)
	}

	if cfg.App.TokenSignKey == "" {
		err = errors.Join(err, ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration < 0 || cfg.Server.RequestTimeout < 0 {
		err = errors.Join(err, ErrInvalidServerConfigs)
	}

	return err
}
