// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/zivi-portal/internal/interaction"
	"github.com/MKhiriev/zivi-portal/internal/logger"
	"github.com/MKhiriev/zivi-portal/internal/store"
	"github.com/MKhiriev/zivi-portal/internal/validators"
	"github.com/MKhiriev/zivi-portal/models"
)

type helpdeskService struct {
	ticketRepository      store.TicketRepository
	interactionRepository store.InteractionRepository
	validator             validators.Validator
	ids                   idGenerator
	clock                 clock

	logger *logger.Logger
}

func NewHelpdeskService(tickets store.TicketRepository, interactions store.InteractionRepository,
	validator validators.Validator, ids idGenerator, logger *logger.Logger) HelpdeskService {
	return &helpdeskService{
		ticketRepository:      tickets,
		interactionRepository: interactions,
		validator:             validator,
		ids:                   ids,
		logger:                logger,
	}
}

func (s *helpdeskService) ListTickets(ctx context.Context, actor models.User, status string) ([]models.Ticket, error) {
	if err := requireUser(actor); err != nil {
		return nil, err
	}

	tickets, err := s.ticketRepository.ListTickets(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing tickets: %w", err)
	}

	tickets = interaction.Filter(tickets, func(t models.Ticket) bool {
		return interaction.MatchesFilter(string(t.Status), status)
	})
	for i := range tickets {
		tickets[i].Interaction = interaction.Personalize(tickets[i].Interaction, actor.ID)
	}
	interaction.Sort(tickets, actor.ID, interaction.NewestFirst[models.Ticket])

	return tickets, nil
}

// CreateTicket opens a ticket. Priority defaults to medium.
func (s *helpdeskService) CreateTicket(ctx context.Context, actor models.User, data models.NewTicket) (models.Ticket, error) {
	if err := requireUser(actor); err != nil {
		return models.Ticket{}, err
	}

	if err := interaction.Required("title", data.Title, "description", data.Description); err != nil {
		return models.Ticket{}, err
	}
	if err := s.validator.Validate(ctx, data); err != nil {
		return models.Ticket{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	priority := data.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	ticket := models.Ticket{
		Interaction: interaction.New(s.ids.Generate(), actor, s.clock.now()),
		Title:       strings.TrimSpace(data.Title),
		Description: strings.TrimSpace(data.Description),
		Priority:    priority,
		Status:      models.TicketOpen,
		Assignees:   []string{},
	}
	if err := s.ticketRepository.CreateTicket(ctx, ticket); err != nil {
		return models.Ticket{}, fmt.Errorf("error creating ticket: %w", err)
	}

	return ticket, nil
}

func (s *helpdeskService) ViewTicket(ctx context.Context, actor models.User, ticketID string) (models.Ticket, error) {
	if err := requireUser(actor); err != nil {
		return models.Ticket{}, err
	}

	ticket, err := s.getTicket(ctx, ticketID, actor.ID)
	if err != nil {
		return models.Ticket{}, err
	}

	now := s.clock.now()
	if err = s.interactionRepository.RecordView(ctx, models.KindTicket, ticketID, actor.ID, now); err != nil {
		return models.Ticket{}, fmt.Errorf("error recording view: %w", err)
	}

	ticket.Interaction = interaction.View(ticket.Interaction, actor.ID, now)
	return ticket, nil
}

// AddComment appends a comment. Commenting counts as viewing the ticket.
func (s *helpdeskService) AddComment(ctx context.Context, actor models.User, ticketID string, data models.NewComment) (models.Comment, error) {
	if err := requireUser(actor); err != nil {
		return models.Comment{}, err
	}

	if err := interaction.Required("content", data.Content); err != nil {
		return models.Comment{}, err
	}

	comment := models.Comment{
		ID:        s.ids.Generate(),
		TicketID:  ticketID,
		AuthorID:  actor.ID,
		Author:    actor.FullName(),
		Content:   strings.TrimSpace(data.Content),
		CreatedAt: s.clock.now(),
	}
	if err := s.ticketRepository.AddComment(ctx, comment); err != nil {
		return models.Comment{}, fmt.Errorf("error adding comment: %w", err)
	}

	return comment, nil
}

func (s *helpdeskService) ListComments(ctx context.Context, actor models.User, ticketID string) ([]models.Comment, error) {
	if err := requireUser(actor); err != nil {
		return nil, err
	}

	if _, err := s.ticketRepository.GetTicket(ctx, ticketID); err != nil {
		return nil, fmt.Errorf("error loading ticket: %w", err)
	}

	comments, err := s.ticketRepository.ListComments(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("error listing comments: %w", err)
	}
	return comments, nil
}

// AssignTicket adds assignee once; assigning the same name again is a no-op.
func (s *helpdeskService) AssignTicket(ctx context.Context, actor models.User, ticketID, assignee string) (models.Ticket, error) {
	if err := requireUser(actor); err != nil {
		return models.Ticket{}, err
	}

	if err := interaction.Required("assignee", assignee); err != nil {
		return models.Ticket{}, err
	}

	if err := s.ticketRepository.AddAssignee(ctx, ticketID, strings.TrimSpace(assignee), s.clock.now()); err != nil {
		return models.Ticket{}, fmt.Errorf("error assigning ticket: %w", err)
	}

	return s.getTicket(ctx, ticketID, actor.ID)
}

func (s *helpdeskService) UnassignTicket(ctx context.Context, actor models.User, ticketID, assignee string) (models.Ticket, error) {
	if err := requireUser(actor); err != nil {
		return models.Ticket{}, err
	}

	if err := s.ticketRepository.RemoveAssignee(ctx, ticketID, assignee); err != nil {
		return models.Ticket{}, fmt.Errorf("error unassigning ticket: %w", err)
	}

	return s.getTicket(ctx, ticketID, actor.ID)
}

// UpdateStatus moves the ticket to status. Resolving stamps ResolvedAt;
// closing stamps ClosedAt and, when the ticket was never resolved,
// ResolvedAt as well. Other transitions keep the stamps.
func (s *helpdeskService) UpdateStatus(ctx context.Context, actor models.User, ticketID string, status models.TicketStatus) (models.Ticket, error) {
	if err := requireUser(actor); err != nil {
		return models.Ticket{}, err
	}

	if err := s.validator.Validate(ctx, models.TicketStatusUpdate{Status: status}); err != nil {
		return models.Ticket{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	ticket, err := s.ticketRepository.GetTicket(ctx, ticketID)
	if err != nil {
		return models.Ticket{}, fmt.Errorf("error loading ticket: %w", err)
	}

	now := s.clock.now()
	ticket.Status = status
	switch status {
	case models.TicketResolved:
		ticket.ResolvedAt = &now
	case models.TicketClosed:
		ticket.ClosedAt = &now
		if ticket.ResolvedAt == nil {
			ticket.ResolvedAt = &now
		}
	}

	if err = s.ticketRepository.UpdateTicketStatus(ctx, ticket); err != nil {
		logger.FromContext(ctx).Err(err).Str("ticket_id", ticketID).Msg("ticket status update failed")
		return models.Ticket{}, fmt.Errorf("error updating ticket status: %w", err)
	}

	ticket.Interaction = interaction.Personalize(ticket.Interaction, actor.ID)
	return ticket, nil
}

func (s *helpdeskService) getTicket(ctx context.Context, ticketID, userID string) (models.Ticket, error) {
	ticket, err := s.ticketRepository.GetTicket(ctx, ticketID)
	if err != nil {
		return models.Ticket{}, fmt.Errorf("error loading ticket: %w", err)
	}
	ticket.Interaction = interaction.Personalize(ticket.Interaction, userID)
	return ticket, nil
}
