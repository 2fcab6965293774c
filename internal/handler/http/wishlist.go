// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/zivi-portal/internal/utils"
	"github.com/MKhiriev/zivi-portal/models"
)

func (h *Handler) listWishlistItems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	items, err := h.services.WishlistService.ListWishlistItems(r.Context(), actor(r), query.Get("status"), query.Get("category"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) createWishlistItem(w http.ResponseWriter, r *http.Request) {
	var data models.NewWishlistItem
	if err := decodeJSON(r, &data); err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.services.WishlistService.CreateWishlistItem(r.Context(), actor(r), data)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) viewWishlistItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.services.WishlistService.ViewWishlistItem(r.Context(), actor(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) voteWishlistItem(w http.ResponseWriter, r *http.Request) {
	var vote models.VoteRequest
	if err := decodeJSON(r, &vote); err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.services.WishlistService.VoteWishlistItem(r.Context(), actor(r), chi.URLParam(r, "id"), vote.Direction)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) updateWishlistStatus(w http.ResponseWriter, r *http.Request) {
	var update models.WishlistStatusUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.services.WishlistService.UpdateStatus(r.Context(), actor(r), chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, item, http.StatusOK)
}
