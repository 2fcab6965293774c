// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package interaction

import (
	"testing"
	"time"

	"github.com/MKhiriev/zivi-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	anna = models.User{ID: "u-anna", FirstName: "Anna", LastName: "Muster"}
	ben  = models.User{ID: "u-ben", FirstName: "Ben", LastName: "Keller"}
	t0   = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
)

func TestNew_AuthorHasSeenRecord(t *testing.T) {
	h := New("r-1", anna, t0)

	assert.Equal(t, "r-1", h.ID)
	assert.Equal(t, "Anna Muster", h.Author)
	assert.Equal(t, anna.ID, h.AuthorID)
	assert.True(t, h.IsNew)
	assert.Equal(t, t0, h.ViewedBy[anna.ID])

	assert.False(t, IsNew(h, anna.ID), "author must not see own record as new")
	assert.True(t, IsNew(h, ben.ID))
}

func TestIsNew_RequiresGlobalFlag(t *testing.T) {
	h := models.Interaction{IsNew: false, ViewedBy: map[string]time.Time{}}
	assert.False(t, IsNew(h, ben.ID))

	h.IsNew = true
	assert.True(t, IsNew(h, ben.ID))

	h.ViewedBy[ben.ID] = t0
	assert.False(t, IsNew(h, ben.ID))
}

func TestView_ClearsNewForEveryone(t *testing.T) {
	h := New("r-1", anna, t0)

	viewed := View(h, ben.ID, t0.Add(time.Minute))

	assert.False(t, viewed.IsNew)
	assert.False(t, IsNew(viewed, ben.ID))
	assert.False(t, IsNew(viewed, "u-carla"), "global flag is cleared by the first view")
	assert.Equal(t, t0.Add(time.Minute), viewed.ViewedBy[ben.ID])

	// the input header is left untouched
	assert.True(t, h.IsNew)
	_, seen := h.ViewedBy[ben.ID]
	assert.False(t, seen)
}

func TestView_IsIdempotentAndOverwritesTimestamp(t *testing.T) {
	h := New("r-1", anna, t0)

	h = View(h, ben.ID, t0.Add(time.Minute))
	h = View(h, ben.ID, t0.Add(time.Hour))

	assert.Len(t, h.ViewedBy, 2)
	assert.Equal(t, t0.Add(time.Hour), h.ViewedBy[ben.ID])
}

func TestView_NilViewedBy(t *testing.T) {
	h := View(models.Interaction{IsNew: true}, ben.ID, t0)

	require.NotNil(t, h.ViewedBy)
	assert.Equal(t, t0, h.ViewedBy[ben.ID])
}

func TestPersonalize(t *testing.T) {
	h := New("r-1", anna, t0)

	assert.True(t, Personalize(h, ben.ID).NewForUser)
	assert.False(t, Personalize(h, anna.ID).NewForUser)
}

func TestRequired(t *testing.T) {
	assert.NoError(t, Required("title", "Grill", "content", "Am Freitag"))
	assert.NoError(t, Required())

	err := Required("title", "Grill", "content", "   \t")
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "content")

	assert.ErrorIs(t, Required("title", ""), ErrValidation)
}
