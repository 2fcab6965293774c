// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/zivi-portal/internal/app"
	"github.com/MKhiriev/zivi-portal/internal/utils"
)

// methodNotAllowed is registered via [chi.Mux.MethodNotAllowed]. chi calls it
// when the path matches a route but the method does not, after it has set
// the Allow header. The body carries the same error shape as every other
// failure of the API.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, messageBody{Error: app.MsgMethodNotAllowed}, http.StatusMethodNotAllowed)
}

// notFound answers unknown paths with the JSON error shape.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, messageBody{Error: app.MsgDataNotFound}, http.StatusNotFound)
}
