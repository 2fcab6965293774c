// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ScheduleDays of the duty schedule in display order.
var ScheduleDays = []string{"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag", "Sonntag"}

// ContactInfo is the contact block of the info page.
type ContactInfo struct {
	Phone          string `json:"phone" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Address        string `json:"address" validate:"required"`
	EmergencyPhone string `json:"emergency_phone" validate:"required"`
}

// DutyDay holds the working hours of one day, e.g. "08:00 - 12:00" or "Frei".
type DutyDay struct {
	Day       string `json:"day" validate:"required"`
	Morning   string `json:"morning" validate:"required"`
	Afternoon string `json:"afternoon" validate:"required"`
}

// InfoPage is the shared "Informationen" page.
type InfoPage struct {
	Contact  ContactInfo `json:"contact"`
	Schedule []DutyDay   `json:"schedule"`

	// UpdatedAt is nil until an admin edits the page.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	UpdatedBy string     `json:"updated_by,omitempty"`
}

// InfoUpdate is the body of an info page update. The schedule must list
// every day of the week once.
type InfoUpdate struct {
	Contact  ContactInfo `json:"contact"`
	Schedule []DutyDay   `json:"schedule" validate:"len=7,dive"`
}
