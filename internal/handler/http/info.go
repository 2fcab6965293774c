// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/zivi-portal/internal/utils"
	"github.com/MKhiriev/zivi-portal/models"
)

func (h *Handler) getInfoPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.InfoService.GetInfoPage(r.Context(), actor(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) updateInfoPage(w http.ResponseWriter, r *http.Request) {
	var update models.InfoUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.InfoService.UpdateInfoPage(r.Context(), actor(r), update)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, page, http.StatusOK)
}
