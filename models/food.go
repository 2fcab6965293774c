// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DietaryTags are the tags a food suggestion may carry.
var DietaryTags = []string{"Vegetarisch", "Vegan", "Glutenfrei", "Fleisch", "Scharf", "Süß"}

// FoodItem is a meal suggestion that users vote on.
type FoodItem struct {
	Interaction
	Tally

	Name        string     `json:"name"`
	Description string     `json:"description"`
	DietaryTags []string   `json:"dietary_tags"`
	PlannedFor  *time.Time `json:"planned_for,omitempty"`
}

// NewFoodItem is the body of a food suggestion request.
type NewFoodItem struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	DietaryTags []string `json:"dietary_tags" validate:"dive,oneof=Vegetarisch Vegan Glutenfrei Fleisch Scharf Süß"`
}
