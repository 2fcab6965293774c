// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/zivi-portal/internal/utils"
	"github.com/MKhiriev/zivi-portal/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context(), actor(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var data models.NewUser
	if err := decodeJSON(r, &data); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.UserService.CreateUser(r.Context(), actor(r), data)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var patch models.UserPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), actor(r), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.services.UserService.DeleteUser(r.Context(), actor(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var change models.PasswordChange
	if err := decodeJSON(r, &change); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.UserService.ChangePassword(r.Context(), actor(r), chi.URLParam(r, "id"), change); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) updateProfilePicture(w http.ResponseWriter, r *http.Request) {
	var body models.ProfilePictureUpdate
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdateProfilePicture(r.Context(), actor(r), chi.URLParam(r, "id"), body.ProfilePicture)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, user, http.StatusOK)
}
