// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/zivi-portal/internal/utils"
	"github.com/MKhiriev/zivi-portal/models"
)

// decodeJSON reads the request body into dst. Unknown fields are ignored.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", errInvalidJSON, err)
	}
	return nil
}

// actor returns the user the auth middleware resolved. Routes outside the
// authenticated group get the zero user, which every service rejects.
func actor(r *http.Request) models.User {
	user, _ := utils.GetUserFromContext(r.Context())
	return user
}
