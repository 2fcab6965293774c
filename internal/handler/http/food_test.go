// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/zivi-portal/internal/app"
	"github.com/MKhiriev/zivi-portal/internal/store"
	"github.com/MKhiriev/zivi-portal/models"
)

func TestFood_Endpoints(t *testing.T) {
	router, m := newMockedHandler(t)
	m.signedInAs(anna)

	risotto := models.FoodItem{
		Interaction: models.Interaction{ID: "f-1", AuthorID: anna.ID},
		Name:        "Risotto",
		DietaryTags: []string{"Vegetarisch", "Glutenfrei"},
	}
	upvoted := risotto
	upvoted.Tally = models.Tally{Upvotes: 1, UserVote: models.VoteUp}
	data := models.NewFoodItem{Name: "Risotto", DietaryTags: []string{"Vegetarisch", "Glutenfrei"}}

	m.food.EXPECT().ListFoodItems(gomock.Any(), anna, "Vegan").Return([]models.FoodItem{}, nil)
	m.food.EXPECT().CreateFoodItem(gomock.Any(), anna, data).Return(risotto, nil)
	m.food.EXPECT().ViewFoodItem(gomock.Any(), anna, "f-1").Return(risotto, nil)
	m.food.EXPECT().VoteFoodItem(gomock.Any(), anna, "f-1", models.VoteUp).Return(upvoted, nil)
	m.food.EXPECT().VoteFoodItem(gomock.Any(), anna, "f-404", models.VoteDown).Return(models.FoodItem{}, store.ErrRecordNotFound)

	rr := serve(t, router, http.MethodGet, "/api/food?tag=Vegan", validToken, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = serve(t, router, http.MethodPost, "/api/food", validToken, data)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, []string{"Vegetarisch", "Glutenfrei"}, decodeBody[models.FoodItem](t, rr).DietaryTags)

	rr = serve(t, router, http.MethodPost, "/api/food/f-1/view", validToken, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(t, router, http.MethodPost, "/api/food/f-1/vote", validToken, models.VoteRequest{Direction: models.VoteUp})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, decodeBody[models.FoodItem](t, rr).Upvotes)

	rr = serve(t, router, http.MethodPost, "/api/food/f-404/vote", validToken, models.VoteRequest{Direction: models.VoteDown})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, app.MsgDataNotFound, errorMessage(t, rr))
}
