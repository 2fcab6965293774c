// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/zivi-portal/internal/logger"
	"github.com/MKhiriev/zivi-portal/internal/utils"
	"github.com/MKhiriev/zivi-portal/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var credentials models.LoginRequest
	if err := decodeJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.Login(r.Context(), credentials.Email, credentials.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", result.User.ID).Bool("first_login", result.RequiresPasswordChange).Msg("user logged in")
	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := utils.GetSessionIDFromContext(r.Context())

	if err := h.services.AuthService.Logout(r.Context(), sessionID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// session returns the user behind the current token, so a client can restore
// its state after a reload.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	user := actor(r)
	utils.WriteJSON(w, models.LoginResult{
		User:                   user,
		RequiresPasswordChange: user.IsFirstLogin,
	}, http.StatusOK)
}

func (h *Handler) setFirstPassword(w http.ResponseWriter, r *http.Request) {
	var body models.PasswordChange
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.SetPasswordAfterFirstLogin(r.Context(), actor(r), body.NewPassword)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
