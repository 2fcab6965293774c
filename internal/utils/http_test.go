// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/zivi-portal/models"
)

func TestWriteJSON_PortalPayloads(t *testing.T) {
	createdAt := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	posts := []models.Post{{
		Interaction: models.Interaction{ID: "p-1", AuthorID: "anna", Author: "Anna Muster", CreatedAt: createdAt},
		Tally:       models.Tally{Upvotes: 2, UserVote: models.VoteUp},
		Title:       "Grillabend",
		Content:     "Freitag ab 18 Uhr",
		Category:    "Events",
	}}

	tests := []struct {
		name   string
		data   any
		status int
		want   string
	}{
		{
			name:   "error body",
			data:   struct{ Error string `json:"error"` }{"Zugriff verweigert"},
			status: http.StatusForbidden,
			want:   `{"error":"Zugriff verweigert"}`,
		},
		{
			name:   "bulletin list",
			data:   posts,
			status: http.StatusOK,
		},
		{
			name:   "empty list",
			data:   []models.Post{},
			status: http.StatusOK,
			want:   `[]`,
		},
		{
			name:   "no content",
			data:   nil,
			status: http.StatusOK,
			want:   `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)
			require.NoError(t, err)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, w.Body.Len(), n)
			if tt.want != "" {
				assert.JSONEq(t, tt.want, w.Body.String())
			}
		})
	}
}

func TestWriteJSON_BulletinRoundTrip(t *testing.T) {
	w := httptest.NewRecorder()
	post := models.Post{
		Interaction: models.Interaction{ID: "p-1", Author: "Ben Beispiel", NewForUser: true},
		Tally:       models.Tally{Downvotes: 1},
		Title:       "Velo gefunden",
		Content:     "Beim Eingang",
		Category:    "Fundstücke",
	}

	_, err := WriteJSON(w, []models.Post{post}, http.StatusOK)
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Fundstücke", got[0]["category"])
	assert.Equal(t, true, got[0]["new_for_user"])
	assert.EqualValues(t, 1, got[0]["downvotes"])
}

func TestWriteJSON_MarshalFailure(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, map[string]any{"reminders": make(chan int)}, http.StatusOK)

	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error writing data to JSON")
}
