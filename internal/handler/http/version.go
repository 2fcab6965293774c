// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/zivi-portal/internal/utils"
)

type versionBody struct {
	Version string `json:"version"`
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, versionBody{Version: h.services.AppInfoService.GetAppVersion(r.Context())}, http.StatusOK)
}
