// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RecordKind names a list of interaction records. It is the discriminator
// column of the shared view and vote tables.
type RecordKind string

const (
	KindBulletin RecordKind = "bulletin"
	KindTicket   RecordKind = "ticket"
	KindFood     RecordKind = "food"
	KindWishlist RecordKind = "wishlist"
)

// Vote is the vote a single user holds on a record.
type Vote string

const (
	VoteNone Vote = ""
	VoteUp   Vote = "up"
	VoteDown Vote = "down"
)

// Interaction is the header shared by every user-generated list item:
// bulletin posts, tickets, food suggestions and wishlist entries.
type Interaction struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`

	// IsNew is the global "new" flag. It is cleared by the first view of any user.
	IsNew bool `json:"is_new"`

	// ViewedBy maps user ID to the last time that user viewed or acted on the record.
	ViewedBy map[string]time.Time `json:"viewed_by"`

	// NewForUser is computed per request for the asking user.
	NewForUser bool `json:"new_for_user"`
}

// Header returns the shared interaction header.
func (i Interaction) Header() Interaction {
	return i
}

// Tally holds the vote counts of a record and the asking user's own vote.
type Tally struct {
	Upvotes   int  `json:"upvotes"`
	Downvotes int  `json:"downvotes"`
	UserVote  Vote `json:"user_vote"`
}

// Counts returns the tally.
func (t Tally) Counts() Tally {
	return t
}

// VoteRequest is the body of a vote request.
type VoteRequest struct {
	Direction Vote `json:"direction"`
}
