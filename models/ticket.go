// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Priority is shared by tickets and reminders.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// TicketStatus is the lifecycle state of a helpdesk ticket.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in-progress"
	TicketResolved   TicketStatus = "resolved"
	TicketClosed     TicketStatus = "closed"
)

// Ticket is a helpdesk request.
type Ticket struct {
	Interaction

	Title       string       `json:"title"`
	Description string       `json:"description"`
	Priority    Priority     `json:"priority"`
	Status      TicketStatus `json:"status"`
	Assignees   []string     `json:"assignees"`
	ResolvedAt  *time.Time   `json:"resolved_at,omitempty"`
	ClosedAt    *time.Time   `json:"closed_at,omitempty"`
}

// NewTicket is the body of a ticket creation request.
type NewTicket struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// Comment is a message in a ticket thread.
type Comment struct {
	ID        string    `json:"id"`
	TicketID  string    `json:"ticket_id"`
	AuthorID  string    `json:"author_id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// NewComment is the body of a comment request.
type NewComment struct {
	Content string `json:"content"`
}

// AssigneeRequest is the body of an assign request.
type AssigneeRequest struct {
	Assignee string `json:"assignee" validate:"required"`
}

// TicketStatusUpdate is the body of a status change request.
type TicketStatusUpdate struct {
	Status TicketStatus `json:"status" validate:"required,oneof=open in-progress resolved closed"`
}
