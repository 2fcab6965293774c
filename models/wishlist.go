// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// WishlistCategories are the accepted wishlist categories.
var WishlistCategories = []string{"Küche", "Büro", "Freizeit", "Technik", "Transport", "Sonstiges"}

// DefaultWishlistCategory is used when an item is created without a category.
const DefaultWishlistCategory = "Büro"

// WishlistStatus is the moderation state of a wishlist item.
type WishlistStatus string

const (
	WishlistPending   WishlistStatus = "pending"
	WishlistApproved  WishlistStatus = "approved"
	WishlistFulfilled WishlistStatus = "fulfilled"
	WishlistRejected  WishlistStatus = "rejected"
)

// WishlistItem is a purchase suggestion.
type WishlistItem struct {
	Interaction
	Tally

	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Category       string         `json:"category"`
	EstimatedCost  string         `json:"estimated_cost,omitempty"`
	Status         WishlistStatus `json:"status"`
	FulfilledAt    *time.Time     `json:"fulfilled_at,omitempty"`
	RejectedReason string         `json:"rejected_reason,omitempty"`
}

// NewWishlistItem is the body of a wishlist creation request.
type NewWishlistItem struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Category      string `json:"category" validate:"omitempty,oneof=Küche Büro Freizeit Technik Transport Sonstiges"`
	EstimatedCost string `json:"estimated_cost"`
}

// WishlistStatusUpdate is the body of an admin moderation request.
type WishlistStatusUpdate struct {
	Status         WishlistStatus `json:"status" validate:"required,oneof=pending approved fulfilled rejected"`
	RejectedReason string         `json:"rejected_reason"`
}
