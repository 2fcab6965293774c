// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/zivi-portal/internal/utils"
	"github.com/MKhiriev/zivi-portal/models"
)

func (h *Handler) weeklyPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.services.MealPlanService.WeeklyPlan(r.Context(), actor(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, plan, http.StatusOK)
}

func (h *Handler) planMeal(w http.ResponseWriter, r *http.Request) {
	var body models.PlanMealRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	day, err := h.services.MealPlanService.PlanMeal(r.Context(), actor(r), chi.URLParam(r, "day"), body.FoodItemID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, day, http.StatusOK)
}

func (h *Handler) removePlannedMeal(w http.ResponseWriter, r *http.Request) {
	day, err := h.services.MealPlanService.RemovePlannedMeal(r.Context(), actor(r), chi.URLParam(r, "day"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, day, http.StatusOK)
}

func (h *Handler) updateCookingDetails(w http.ResponseWriter, r *http.Request) {
	var details models.CookingDetails
	if err := decodeJSON(r, &details); err != nil {
		writeError(w, r, err)
		return
	}

	day, err := h.services.MealPlanService.UpdateCookingDetails(r.Context(), actor(r), chi.URLParam(r, "day"), details)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, day, http.StatusOK)
}

func (h *Handler) markAsPaid(w http.ResponseWriter, r *http.Request) {
	day, err := h.services.MealPlanService.MarkAsPaid(r.Context(), actor(r), chi.URLParam(r, "day"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, day, http.StatusOK)
}
