// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package interaction

import (
	"testing"

	"github.com/MKhiriev/zivi-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextVote(t *testing.T) {
	tests := []struct {
		name      string
		mode      Mode
		current   models.Vote
		requested models.Vote
		want      models.Vote
		wantErr   bool
	}{
		{"tristate first up", TriState, models.VoteNone, models.VoteUp, models.VoteUp, false},
		{"tristate first down", TriState, models.VoteNone, models.VoteDown, models.VoteDown, false},
		{"tristate repeat up clears", TriState, models.VoteUp, models.VoteUp, models.VoteNone, false},
		{"tristate repeat down clears", TriState, models.VoteDown, models.VoteDown, models.VoteNone, false},
		{"tristate switch up to down", TriState, models.VoteUp, models.VoteDown, models.VoteDown, false},
		{"tristate switch down to up", TriState, models.VoteDown, models.VoteUp, models.VoteUp, false},
		{"tristate empty direction", TriState, models.VoteUp, models.VoteNone, models.VoteUp, true},
		{"tristate garbage direction", TriState, models.VoteNone, "sideways", models.VoteNone, true},
		{"toggle on", Toggle, models.VoteNone, models.VoteUp, models.VoteUp, false},
		{"toggle off", Toggle, models.VoteUp, models.VoteUp, models.VoteNone, false},
		{"toggle rejects down", Toggle, models.VoteUp, models.VoteDown, models.VoteUp, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextVote(tt.current, tt.requested, tt.mode)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidVote)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func vote(t *testing.T, tally models.Tally, requested models.Vote, mode Mode) models.Tally {
	t.Helper()
	next, err := NextVote(tally.UserVote, requested, mode)
	require.NoError(t, err)
	return ApplyVote(tally, tally.UserVote, next)
}

func TestVote_DoubleToggleRestoresState(t *testing.T) {
	start := models.Tally{Upvotes: 4, Downvotes: 1}

	after := vote(t, vote(t, start, models.VoteUp, TriState), models.VoteUp, TriState)

	assert.Equal(t, start, after)

	after = vote(t, vote(t, start, models.VoteUp, Toggle), models.VoteUp, Toggle)
	assert.Equal(t, start, after)
}

func TestVote_SwitchDirectionMovesOneVote(t *testing.T) {
	start := models.Tally{Upvotes: 4, Downvotes: 1}

	up := vote(t, start, models.VoteUp, TriState)
	require.Equal(t, 5, up.Upvotes)

	down := vote(t, up, models.VoteDown, TriState)

	assert.Equal(t, up.Upvotes-1, down.Upvotes)
	assert.Equal(t, up.Downvotes+1, down.Downvotes)
	assert.Equal(t, models.VoteDown, down.UserVote)
}

func TestApplyVote_NoChange(t *testing.T) {
	start := models.Tally{Upvotes: 2, Downvotes: 3, UserVote: models.VoteDown}

	assert.Equal(t, start, ApplyVote(start, models.VoteDown, models.VoteDown))
}
