// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/zivi-portal/internal/logger"
	"github.com/MKhiriev/zivi-portal/models"
)

type ticketRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTicketRepository constructs a [TicketRepository] over the "tickets",
// "ticket_comments" and "ticket_assignees" tables.
func NewTicketRepository(db *DB, logger *logger.Logger) TicketRepository {
	logger.Debug().Msg("creating ticket repository")
	return &ticketRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ticketRepository) CreateTicket(ctx context.Context, ticket models.Ticket) error {
	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		_, err := r.db.exec(ctx, tx, r.db.builder.Insert("tickets").
			Columns("id", "author_id", "author", "title", "description", "priority", "status", "is_new", "created_at").
			Values(ticket.ID, ticket.AuthorID, ticket.Author, ticket.Title, ticket.Description,
				string(ticket.Priority), string(ticket.Status), ticket.IsNew, ticket.CreatedAt.UTC()))
		if err != nil {
			return err
		}
		return r.db.insertViews(ctx, tx, models.KindTicket, ticket.Interaction)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*ticketRepository.CreateTicket").Msg("error creating ticket")
	}
	return err
}

func (r *ticketRepository) selectTickets() sq.SelectBuilder {
	return r.db.builder.
		Select("id", "author_id", "author", "created_at", "is_new",
			"title", "description", "priority", "status", "resolved_at", "closed_at").
		From("tickets")
}

func scanTicket(row rowScanner) (models.Ticket, error) {
	var (
		ticket             models.Ticket
		priority, status   string
		resolvedAt, closed *time.Time
	)
	err := row.Scan(&ticket.ID, &ticket.AuthorID, &ticket.Author, &ticket.CreatedAt, &ticket.IsNew,
		&ticket.Title, &ticket.Description, &priority, &status, &resolvedAt, &closed)
	if err != nil {
		return models.Ticket{}, err
	}
	ticket.Priority = models.Priority(priority)
	ticket.Status = models.TicketStatus(status)
	ticket.ResolvedAt = resolvedAt
	ticket.ClosedAt = closed
	ticket.Assignees = make([]string, 0)
	return ticket, nil
}

// GetTicket returns [ErrRecordNotFound] when no ticket has the given ID.
func (r *ticketRepository) GetTicket(ctx context.Context, ticketID string) (models.Ticket, error) {
	row, err := r.db.queryRow(ctx, r.db, r.selectTickets().Where(sq.Eq{"id": ticketID}))
	if err != nil {
		return models.Ticket{}, err
	}

	ticket, err := scanTicket(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Ticket{}, ErrRecordNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*ticketRepository.GetTicket").Msg("error scanning ticket")
		return models.Ticket{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	tickets := []models.Ticket{ticket}
	if err = r.attach(ctx, tickets); err != nil {
		return models.Ticket{}, err
	}
	return tickets[0], nil
}

func (r *ticketRepository) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.query(ctx, r.db, r.selectTickets().OrderBy("created_at DESC", "id"))
	if err != nil {
		log.Err(err).Str("func", "*ticketRepository.ListTickets").Msg("error querying tickets")
		return nil, err
	}

	tickets := make([]models.Ticket, 0)
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tickets = append(tickets, ticket)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if err = r.attach(ctx, tickets); err != nil {
		log.Err(err).Str("func", "*ticketRepository.ListTickets").Msg("error loading ticket details")
		return nil, err
	}
	return tickets, nil
}

// attach loads viewers and assignees for the tickets in place.
func (r *ticketRepository) attach(ctx context.Context, tickets []models.Ticket) error {
	if len(tickets) == 0 {
		return nil
	}

	headers := make([]*models.Interaction, len(tickets))
	ids := make([]string, len(tickets))
	index := make(map[string]int, len(tickets))
	for i := range tickets {
		headers[i] = &tickets[i].Interaction
		ids[i] = tickets[i].ID
		index[tickets[i].ID] = i
	}
	if err := r.db.attachInteractions(ctx, models.KindTicket, "", headers, nil); err != nil {
		return err
	}

	rows, err := r.db.query(ctx, r.db, r.db.builder.Select("ticket_id", "assignee").From("ticket_assignees").
		Where(sq.Eq{"ticket_id": ids}).
		OrderBy("assigned_at", "assignee"))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var ticketID, assignee string
		if err = rows.Scan(&ticketID, &assignee); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if i, ok := index[ticketID]; ok {
			tickets[i].Assignees = append(tickets[i].Assignees, assignee)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return nil
}

// UpdateTicketStatus returns [ErrRecordNotFound] when the ticket does not exist.
func (r *ticketRepository) UpdateTicketStatus(ctx context.Context, ticket models.Ticket) error {
	update := r.db.builder.Update("tickets").
		Set("status", string(ticket.Status)).
		Set("resolved_at", utcOrNil(ticket.ResolvedAt)).
		Set("closed_at", utcOrNil(ticket.ClosedAt)).
		Where(sq.Eq{"id": ticket.ID})

	affected, err := r.db.exec(ctx, r.db, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*ticketRepository.UpdateTicketStatus").Msg("error updating ticket status")
		return err
	}
	if affected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// AddAssignee is idempotent: assigning the same name twice keeps one entry.
func (r *ticketRepository) AddAssignee(ctx context.Context, ticketID, assignee string, at time.Time) error {
	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		if err := r.db.recordExists(ctx, tx, "tickets", ticketID); err != nil {
			return err
		}
		_, err := r.db.exec(ctx, tx, r.db.builder.Insert("ticket_assignees").
			Columns("ticket_id", "assignee", "assigned_at").
			Values(ticketID, assignee, at.UTC()).
			Suffix("ON CONFLICT (ticket_id, assignee) DO NOTHING"))
		return err
	})
	if err != nil && !errors.Is(err, ErrRecordNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*ticketRepository.AddAssignee").Msg("error adding assignee")
	}
	return err
}

// RemoveAssignee does nothing when the name is not assigned.
func (r *ticketRepository) RemoveAssignee(ctx context.Context, ticketID, assignee string) error {
	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		if err := r.db.recordExists(ctx, tx, "tickets", ticketID); err != nil {
			return err
		}
		_, err := r.db.exec(ctx, tx, r.db.builder.Delete("ticket_assignees").
			Where(sq.Eq{"ticket_id": ticketID, "assignee": assignee}))
		return err
	})
	if err != nil && !errors.Is(err, ErrRecordNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*ticketRepository.RemoveAssignee").Msg("error removing assignee")
	}
	return err
}

// AddComment stores the comment and marks the ticket viewed by its author.
// It returns [ErrRecordNotFound] when the ticket does not exist.
func (r *ticketRepository) AddComment(ctx context.Context, comment models.Comment) error {
	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		if err := r.db.markViewed(ctx, tx, models.KindTicket, comment.TicketID, comment.AuthorID, comment.CreatedAt); err != nil {
			return err
		}
		_, err := r.db.exec(ctx, tx, r.db.builder.Insert("ticket_comments").
			Columns("id", "ticket_id", "author_id", "author", "content", "created_at").
			Values(comment.ID, comment.TicketID, comment.AuthorID, comment.Author, comment.Content, comment.CreatedAt.UTC()))
		return err
	})
	if err != nil && !errors.Is(err, ErrRecordNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*ticketRepository.AddComment").Msg("error adding comment")
	}
	return err
}

// ListComments returns the ticket's comments oldest first.
func (r *ticketRepository) ListComments(ctx context.Context, ticketID string) ([]models.Comment, error) {
	rows, err := r.db.query(ctx, r.db, r.db.builder.
		Select("id", "ticket_id", "author_id", "author", "content", "created_at").
		From("ticket_comments").
		Where(sq.Eq{"ticket_id": ticketID}).
		OrderBy("created_at", "id"))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*ticketRepository.ListComments").Msg("error querying comments")
		return nil, err
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		var c models.Comment
		if err = rows.Scan(&c.ID, &c.TicketID, &c.AuthorID, &c.Author, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		comments = append(comments, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return comments, nil
}

// recordExists returns [ErrRecordNotFound] when table has no row with the given id.
func (db *DB) recordExists(ctx context.Context, q querier, table, id string) error {
	row, err := db.queryRow(ctx, q, db.builder.Select("1").From(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return err
	}

	var one int
	err = row.Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrRecordNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return nil
}

// utcOrNil converts an optional time into a driver value.
func utcOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
