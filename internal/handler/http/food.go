// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/zivi-portal/internal/utils"
	"github.com/MKhiriev/zivi-portal/models"
)

func (h *Handler) listFoodItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.FoodService.ListFoodItems(r.Context(), actor(r), r.URL.Query().Get("tag"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) createFoodItem(w http.ResponseWriter, r *http.Request) {
	var data models.NewFoodItem
	if err := decodeJSON(r, &data); err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.services.FoodService.CreateFoodItem(r.Context(), actor(r), data)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) viewFoodItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.services.FoodService.ViewFoodItem(r.Context(), actor(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) voteFoodItem(w http.ResponseWriter, r *http.Request) {
	var vote models.VoteRequest
	if err := decodeJSON(r, &vote); err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.services.FoodService.VoteFoodItem(r.Context(), actor(r), chi.URLParam(r, "id"), vote.Direction)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, item, http.StatusOK)
}
