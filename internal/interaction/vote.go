// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package interaction

import (
	"fmt"

	"github.com/MKhiriev/zivi-portal/models"
)

// Mode selects how a list reacts to repeated votes.
type Mode int

const (
	// TriState accepts up and down. Repeating a direction clears the vote,
	// the other direction switches it.
	TriState Mode = iota
	// Toggle accepts up only. Repeating it clears the vote.
	Toggle
)

// NextVote returns the vote a user holds after requesting a direction.
func NextVote(current, requested models.Vote, mode Mode) (models.Vote, error) {
	switch requested {
	case models.VoteUp:
	case models.VoteDown:
		if mode == Toggle {
			return current, fmt.Errorf("%w: %q", ErrInvalidVote, requested)
		}
	default:
		return current, fmt.Errorf("%w: %q", ErrInvalidVote, requested)
	}

	if current == requested {
		return models.VoteNone, nil
	}
	return requested, nil
}

// ApplyVote moves a tally from the old vote to the new one. The previous
// vote is taken back before the new one is counted.
func ApplyVote(t models.Tally, old, next models.Vote) models.Tally {
	switch old {
	case models.VoteUp:
		t.Upvotes--
	case models.VoteDown:
		t.Downvotes--
	}
	switch next {
	case models.VoteUp:
		t.Upvotes++
	case models.VoteDown:
		t.Downvotes++
	}
	t.UserVote = next
	return t
}
