// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package interaction

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/zivi-portal/models"
)

// Record is any list item with an interaction header.
type Record interface {
	Header() models.Interaction
}

// Voted is a record that also carries a vote tally.
type Voted interface {
	Record
	Counts() models.Tally
}

// New returns the header of a freshly created record. The author has already
// seen it; everyone else gets the "new" badge.
func New(id string, author models.User, now time.Time) models.Interaction {
	return models.Interaction{
		ID:        id,
		AuthorID:  author.ID,
		Author:    author.FullName(),
		CreatedAt: now,
		IsNew:     true,
		ViewedBy:  map[string]time.Time{author.ID: now},
	}
}

// IsNew reports whether the record is new to userID: the global flag is set
// and the user has never viewed or acted on it.
func IsNew(h models.Interaction, userID string) bool {
	if !h.IsNew {
		return false
	}
	_, seen := h.ViewedBy[userID]
	return !seen
}

// View clears the global flag and stamps userID with now.
// Repeated views overwrite the timestamp.
func View(h models.Interaction, userID string, now time.Time) models.Interaction {
	viewedBy := make(map[string]time.Time, len(h.ViewedBy)+1)
	for k, v := range h.ViewedBy {
		viewedBy[k] = v
	}
	viewedBy[userID] = now

	h.IsNew = false
	h.ViewedBy = viewedBy
	h.NewForUser = false
	return h
}

// Personalize fills the NewForUser flag for the asking user.
func Personalize(h models.Interaction, userID string) models.Interaction {
	h.NewForUser = IsNew(h, userID)
	return h
}

// Required returns ErrValidation naming the first blank field.
// Fields are passed as name/value pairs.
func Required(fields ...string) error {
	for i := 0; i+1 < len(fields); i += 2 {
		if strings.TrimSpace(fields[i+1]) == "" {
			return fmt.Errorf("%w: %s", ErrValidation, fields[i])
		}
	}
	return nil
}
