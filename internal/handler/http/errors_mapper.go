// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/zivi-portal/internal/app"
	"github.com/MKhiriev/zivi-portal/internal/interaction"
	"github.com/MKhiriev/zivi-portal/internal/logger"
	"github.com/MKhiriev/zivi-portal/internal/service"
	"github.com/MKhiriev/zivi-portal/internal/store"
	"github.com/MKhiriev/zivi-portal/internal/utils"
	"github.com/MKhiriev/zivi-portal/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorResponse{
	service.ErrInvalidDataProvided:     {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrPasswordTooShort:        {http.StatusBadRequest, app.MsgPasswordTooShort},
	service.ErrNotFirstLogin:           {http.StatusBadRequest, app.MsgNotFirstLogin},
	service.ErrInvalidImage:            {http.StatusBadRequest, app.MsgInvalidImage},
	service.ErrVersionIsNotSpecified:   {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrInvalidCredentials:      {http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	service.ErrWrongPassword:           {http.StatusUnauthorized, app.MsgWrongPassword},
	service.ErrNotAuthenticated:        {http.StatusUnauthorized, app.MsgNotAuthenticated},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgSessionExpired},
	service.ErrSessionRevoked:          {http.StatusUnauthorized, app.MsgSessionExpired},
	service.ErrAccessDenied:            {http.StatusForbidden, app.MsgAccessDenied},

	interaction.ErrValidation:  {http.StatusBadRequest, app.MsgRequiredFieldMissing},
	interaction.ErrInvalidVote: {http.StatusBadRequest, app.MsgInvalidVote},
	validators.ErrInvalidInput: {http.StatusBadRequest, app.MsgInvalidDataProvided},

	store.ErrEmailAlreadyExists: {http.StatusConflict, app.MsgEmailAlreadyExists},
	store.ErrUserNotFound:       {http.StatusNotFound, app.MsgUserNotFound},
	store.ErrRecordNotFound:     {http.StatusNotFound, app.MsgDataNotFound},
	store.ErrUnknownDay:         {http.StatusNotFound, app.MsgUnknownDay},

	errInvalidJSON: {http.StatusBadRequest, app.MsgInvalidDataProvided},
}

func responseFromError(err error) errorResponse {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError logs err and answers with the mapped status and German message.
// Server-side failures are logged at error level, client mistakes at debug.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", resp.status).Msg("request rejected")
	}

	utils.WriteJSON(w, messageBody{Error: resp.message}, resp.status)
}

type messageBody struct {
	Error string `json:"error"`
}
