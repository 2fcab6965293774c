// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Weekdays of the meal plan in display order.
var Weekdays = []string{"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag"}

// CookingAssignment is the plan for one weekday.
type CookingAssignment struct {
	Day string `json:"day"`

	// FoodItem is nil when nothing is planned for the day.
	FoodItem *FoodItem `json:"food_item"`

	Cook          string   `json:"cook,omitempty"`
	CostPerPerson *float64 `json:"cost_per_person,omitempty"`
	IBAN          string   `json:"iban,omitempty"`

	// HasPaid maps user ID to payment confirmation.
	HasPaid map[string]bool `json:"has_paid"`
}

// MealPlanSlot is the stored form of a [CookingAssignment]: the food item is
// referenced by ID only.
type MealPlanSlot struct {
	Day           string
	FoodItemID    string
	Cook          string
	CostPerPerson *float64
	IBAN          string
	HasPaid       map[string]bool
}

// PlanMealRequest is the body of a plan request.
type PlanMealRequest struct {
	FoodItemID string `json:"food_item_id" validate:"required"`
}

// CookingDetails is the body of a cooking details update.
type CookingDetails struct {
	Cook          string  `json:"cook" validate:"required"`
	CostPerPerson float64 `json:"cost_per_person" validate:"gte=0"`
	IBAN          string  `json:"iban" validate:"required"`
}
