// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/zivi-portal/internal/utils"
	"github.com/MKhiriev/zivi-portal/models"
)

func (h *Handler) listTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.services.HelpdeskService.ListTickets(r.Context(), actor(r), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, tickets, http.StatusOK)
}

func (h *Handler) createTicket(w http.ResponseWriter, r *http.Request) {
	var data models.NewTicket
	if err := decodeJSON(r, &data); err != nil {
		writeError(w, r, err)
		return
	}

	ticket, err := h.services.HelpdeskService.CreateTicket(r.Context(), actor(r), data)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, ticket, http.StatusCreated)
}

func (h *Handler) viewTicket(w http.ResponseWriter, r *http.Request) {
	ticket, err := h.services.HelpdeskService.ViewTicket(r.Context(), actor(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, ticket, http.StatusOK)
}

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.services.HelpdeskService.ListComments(r.Context(), actor(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, comments, http.StatusOK)
}

func (h *Handler) addComment(w http.ResponseWriter, r *http.Request) {
	var data models.NewComment
	if err := decodeJSON(r, &data); err != nil {
		writeError(w, r, err)
		return
	}

	comment, err := h.services.HelpdeskService.AddComment(r.Context(), actor(r), chi.URLParam(r, "id"), data)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, comment, http.StatusCreated)
}

func (h *Handler) assignTicket(w http.ResponseWriter, r *http.Request) {
	var body models.AssigneeRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	ticket, err := h.services.HelpdeskService.AssignTicket(r.Context(), actor(r), chi.URLParam(r, "id"), body.Assignee)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, ticket, http.StatusOK)
}

func (h *Handler) unassignTicket(w http.ResponseWriter, r *http.Request) {
	ticket, err := h.services.HelpdeskService.UnassignTicket(r.Context(), actor(r),
		chi.URLParam(r, "id"), chi.URLParam(r, "assignee"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, ticket, http.StatusOK)
}

func (h *Handler) updateTicketStatus(w http.ResponseWriter, r *http.Request) {
	var body models.TicketStatusUpdate
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	ticket, err := h.services.HelpdeskService.UpdateStatus(r.Context(), actor(r), chi.URLParam(r, "id"), body.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, ticket, http.StatusOK)
}
