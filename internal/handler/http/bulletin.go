// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/zivi-portal/internal/utils"
	"github.com/MKhiriev/zivi-portal/models"
)

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.BulletinService.ListPosts(r.Context(), actor(r), r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	var data models.NewPost
	if err := decodeJSON(r, &data); err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.BulletinService.CreatePost(r.Context(), actor(r), data)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, post, http.StatusCreated)
}

func (h *Handler) viewPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.services.BulletinService.ViewPost(r.Context(), actor(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) votePost(w http.ResponseWriter, r *http.Request) {
	var vote models.VoteRequest
	if err := decodeJSON(r, &vote); err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.BulletinService.VotePost(r.Context(), actor(r), chi.URLParam(r, "id"), vote.Direction)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, post, http.StatusOK)
}
