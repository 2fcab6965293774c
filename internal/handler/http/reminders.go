// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/zivi-portal/internal/utils"
	"github.com/MKhiriev/zivi-portal/models"
)

func (h *Handler) listReminders(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.services.ReminderService.ListReminders(r.Context(), actor(r), r.URL.Query().Get("filter"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, reminders, http.StatusOK)
}

func (h *Handler) createReminder(w http.ResponseWriter, r *http.Request) {
	var data models.NewReminder
	if err := decodeJSON(r, &data); err != nil {
		writeError(w, r, err)
		return
	}

	reminder, err := h.services.ReminderService.CreateReminder(r.Context(), actor(r), data)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, reminder, http.StatusCreated)
}

func (h *Handler) toggleReminder(w http.ResponseWriter, r *http.Request) {
	reminder, err := h.services.ReminderService.ToggleReminder(r.Context(), actor(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, reminder, http.StatusOK)
}

func (h *Handler) deleteReminder(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ReminderService.DeleteReminder(r.Context(), actor(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
