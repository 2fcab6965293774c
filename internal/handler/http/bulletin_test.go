// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/zivi-portal/internal/app"
	"github.com/MKhiriev/zivi-portal/internal/interaction"
	"github.com/MKhiriev/zivi-portal/internal/store"
	"github.com/MKhiriev/zivi-portal/models"
)

func TestBulletin_ListPassesCategory(t *testing.T) {
	router, m := newMockedHandler(t)
	m.signedInAs(anna)

	posts := []models.Post{
		{Interaction: models.Interaction{ID: "p-2", NewForUser: true}, Title: "Velo gefunden", Category: "Fundstücke"},
		{Interaction: models.Interaction{ID: "p-1"}, Title: "Schlüssel", Category: "Fundstücke"},
	}
	m.bulletin.EXPECT().ListPosts(gomock.Any(), anna, "Fundstücke").Return(posts, nil)
	m.bulletin.EXPECT().ListPosts(gomock.Any(), anna, "").Return([]models.Post{}, nil)

	rr := serve(t, router, http.MethodGet, "/api/bulletin?category="+url.QueryEscape("Fundstücke"), validToken, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	got := decodeBody[[]models.Post](t, rr)
	require.Len(t, got, 2)
	assert.Equal(t, "p-2", got[0].ID)
	assert.True(t, got[0].NewForUser)

	rr = serve(t, router, http.MethodGet, "/api/bulletin", validToken, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestBulletin_Create(t *testing.T) {
	router, m := newMockedHandler(t)
	m.signedInAs(anna)

	data := models.NewPost{Title: "Grillabend", Content: "Freitag ab 18 Uhr", Category: "Events"}
	m.bulletin.EXPECT().CreatePost(gomock.Any(), anna, data).Return(models.Post{
		Interaction: models.Interaction{ID: "p-1", AuthorID: anna.ID, Author: anna.FullName(), IsNew: true},
		Title:       data.Title, Content: data.Content, Category: data.Category,
	}, nil)
	m.bulletin.EXPECT().CreatePost(gomock.Any(), anna, models.NewPost{Content: "ohne Titel"}).
		Return(models.Post{}, interaction.ErrValidation)

	rr := serve(t, router, http.MethodPost, "/api/bulletin", validToken, data)
	require.Equal(t, http.StatusCreated, rr.Code)
	post := decodeBody[models.Post](t, rr)
	assert.Equal(t, "Anna Muster", post.Author)
	assert.True(t, post.IsNew)

	rr = serve(t, router, http.MethodPost, "/api/bulletin", validToken, models.NewPost{Content: "ohne Titel"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgRequiredFieldMissing, errorMessage(t, rr))
}

func TestBulletin_ViewAndVote(t *testing.T) {
	router, m := newMockedHandler(t)
	m.signedInAs(anna)

	viewed := models.Post{Interaction: models.Interaction{ID: "p-1"}}
	voted := models.Post{Interaction: models.Interaction{ID: "p-1"}, Tally: models.Tally{Upvotes: 1, UserVote: models.VoteUp}}

	m.bulletin.EXPECT().ViewPost(gomock.Any(), anna, "p-1").Return(viewed, nil)
	m.bulletin.EXPECT().ViewPost(gomock.Any(), anna, "p-404").Return(models.Post{}, store.ErrRecordNotFound)
	m.bulletin.EXPECT().VotePost(gomock.Any(), anna, "p-1", models.VoteUp).Return(voted, nil)
	m.bulletin.EXPECT().VotePost(gomock.Any(), anna, "p-1", models.Vote("sideways")).Return(models.Post{}, interaction.ErrInvalidVote)

	rr := serve(t, router, http.MethodPost, "/api/bulletin/p-1/view", validToken, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(t, router, http.MethodPost, "/api/bulletin/p-404/view", validToken, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, app.MsgDataNotFound, errorMessage(t, rr))

	rr = serve(t, router, http.MethodPost, "/api/bulletin/p-1/vote", validToken, models.VoteRequest{Direction: models.VoteUp})
	require.Equal(t, http.StatusOK, rr.Code)
	tally := decodeBody[models.Post](t, rr).Tally
	assert.Equal(t, 1, tally.Upvotes)
	assert.Equal(t, models.VoteUp, tally.UserVote)

	rr = serve(t, router, http.MethodPost, "/api/bulletin/p-1/vote", validToken, models.VoteRequest{Direction: "sideways"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidVote, errorMessage(t, rr))
}
