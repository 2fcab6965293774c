// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Bulletin board categories.
var BulletinCategories = []string{"Ankündigungen", "Events", "Fundstücke", "Transport", "Allgemein"}

// DefaultBulletinCategory is used when a post is created without a category.
const DefaultBulletinCategory = "Allgemein"

// Post is an entry on the bulletin board ("Schwarzes Brett").
type Post struct {
	Interaction
	Tally

	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

// NewPost is the body of a post creation request.
type NewPost struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category" validate:"omitempty,oneof=Ankündigungen Events Fundstücke Transport Allgemein"`
}
