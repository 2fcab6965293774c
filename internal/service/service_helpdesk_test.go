// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/zivi-portal/internal/interaction"
	"github.com/MKhiriev/zivi-portal/internal/store"
	"github.com/MKhiriev/zivi-portal/models"
)

func TestCreateTicket(t *testing.T) {
	env := newTestEnv(t, listsStart)
	ctx := context.Background()

	_, err := env.helpdesk.CreateTicket(ctx, env.anna, models.NewTicket{Title: "Drucker"})
	assert.ErrorIs(t, err, interaction.ErrValidation)

	_, err = env.helpdesk.CreateTicket(ctx, env.anna, models.NewTicket{Title: "Drucker", Description: "Papierstau", Priority: "urgent"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	ticket, err := env.helpdesk.CreateTicket(ctx, env.anna, models.NewTicket{Title: "Drucker", Description: "Papierstau"})
	require.NoError(t, err)
	assert.Equal(t, models.TicketOpen, ticket.Status)
	assert.Equal(t, models.PriorityMedium, ticket.Priority)
	assert.Empty(t, ticket.Assignees)

	stored, err := env.helpdesk.ViewTicket(ctx, env.anna, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, "Papierstau", stored.Description)
}

func TestListTickets_FilterByStatus(t *testing.T) {
	env := newTestEnv(t, listsStart)
	ctx := context.Background()

	open, err := env.helpdesk.CreateTicket(ctx, env.anna, models.NewTicket{Title: "A", Description: "a", Priority: models.PriorityHigh})
	require.NoError(t, err)
	done, err := env.helpdesk.CreateTicket(ctx, env.anna, models.NewTicket{Title: "B", Description: "b"})
	require.NoError(t, err)
	_, err = env.helpdesk.ViewTicket(ctx, env.ben, done.ID)
	require.NoError(t, err)
	_, err = env.helpdesk.UpdateStatus(ctx, env.ben, done.ID, models.TicketResolved)
	require.NoError(t, err)

	all, err := env.helpdesk.ListTickets(ctx, env.ben, "all")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, open.ID, all[0].ID, "the untouched ticket is still new to Ben")
	assert.True(t, all[0].NewForUser)

	resolved, err := env.helpdesk.ListTickets(ctx, env.ben, string(models.TicketResolved))
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, done.ID, resolved[0].ID)

	none, err := env.helpdesk.ListTickets(ctx, env.ben, string(models.TicketClosed))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestComments(t *testing.T) {
	env := newTestEnv(t, listsStart)
	ctx := context.Background()

	ticket, err := env.helpdesk.CreateTicket(ctx, env.anna, models.NewTicket{Title: "WLAN", Description: "weg"})
	require.NoError(t, err)

	_, err = env.helpdesk.AddComment(ctx, env.ben, ticket.ID, models.NewComment{Content: " "})
	assert.ErrorIs(t, err, interaction.ErrValidation)

	first, err := env.helpdesk.AddComment(ctx, env.ben, ticket.ID, models.NewComment{Content: "Router neu gestartet"})
	require.NoError(t, err)
	assert.Equal(t, "Ben Keller", first.Author)
	_, err = env.helpdesk.AddComment(ctx, env.anna, ticket.ID, models.NewComment{Content: "Danke!"})
	require.NoError(t, err)

	comments, err := env.helpdesk.ListComments(ctx, env.admin, ticket.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, first.ID, comments[0].ID)
	assert.Equal(t, "Danke!", comments[1].Content)

	// commenting marks the ticket viewed
	tickets, err := env.helpdesk.ListTickets(ctx, env.ben, "all")
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Contains(t, tickets[0].ViewedBy, env.ben.ID)
	assert.False(t, tickets[0].IsNew)

	_, err = env.helpdesk.AddComment(ctx, env.ben, "missing", models.NewComment{Content: "?"})
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
	_, err = env.helpdesk.ListComments(ctx, env.ben, "missing")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestAssignees(t *testing.T) {
	env := newTestEnv(t, listsStart)
	ctx := context.Background()

	ticket, err := env.helpdesk.CreateTicket(ctx, env.anna, models.NewTicket{Title: "Beamer", Description: "kaputt"})
	require.NoError(t, err)

	_, err = env.helpdesk.AssignTicket(ctx, env.anna, ticket.ID, "  ")
	assert.ErrorIs(t, err, interaction.ErrValidation)

	_, err = env.helpdesk.AssignTicket(ctx, env.anna, ticket.ID, "Admin Support")
	require.NoError(t, err)
	_, err = env.helpdesk.AssignTicket(ctx, env.anna, ticket.ID, "Lisa Schmidt")
	require.NoError(t, err)
	assigned, err := env.helpdesk.AssignTicket(ctx, env.ben, ticket.ID, "Admin Support")
	require.NoError(t, err)
	assert.Equal(t, []string{"Admin Support", "Lisa Schmidt"}, assigned.Assignees)

	unassigned, err := env.helpdesk.UnassignTicket(ctx, env.ben, ticket.ID, "Admin Support")
	require.NoError(t, err)
	assert.Equal(t, []string{"Lisa Schmidt"}, unassigned.Assignees)

	_, err = env.helpdesk.AssignTicket(ctx, env.ben, "missing", "Lisa Schmidt")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestUpdateTicketStatus(t *testing.T) {
	env := newTestEnv(t, listsStart)
	ctx := context.Background()

	ticket, err := env.helpdesk.CreateTicket(ctx, env.anna, models.NewTicket{Title: "Heizung", Description: "kalt"})
	require.NoError(t, err)

	_, err = env.helpdesk.UpdateStatus(ctx, env.anna, ticket.ID, "done")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	inProgress, err := env.helpdesk.UpdateStatus(ctx, env.anna, ticket.ID, models.TicketInProgress)
	require.NoError(t, err)
	assert.Nil(t, inProgress.ResolvedAt)
	assert.Nil(t, inProgress.ClosedAt)

	// closing an unresolved ticket stamps both
	closed, err := env.helpdesk.UpdateStatus(ctx, env.anna, ticket.ID, models.TicketClosed)
	require.NoError(t, err)
	require.NotNil(t, closed.ClosedAt)
	require.NotNil(t, closed.ResolvedAt)
	assert.True(t, closed.ResolvedAt.Equal(*closed.ClosedAt))

	resolved, err := env.helpdesk.UpdateStatus(ctx, env.anna, ticket.ID, models.TicketResolved)
	require.NoError(t, err)
	assert.True(t, resolved.ResolvedAt.After(*closed.ResolvedAt))

	reclosed, err := env.helpdesk.UpdateStatus(ctx, env.anna, ticket.ID, models.TicketClosed)
	require.NoError(t, err)
	assert.True(t, reclosed.ResolvedAt.Equal(*resolved.ResolvedAt), "an existing resolution time is kept")

	stored, err := env.storages.TicketRepository.GetTicket(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TicketClosed, stored.Status)
	require.NotNil(t, stored.ClosedAt)
	assert.True(t, stored.ClosedAt.Equal(*reclosed.ClosedAt))

	_, err = env.helpdesk.UpdateStatus(ctx, env.anna, "missing", models.TicketOpen)
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}
