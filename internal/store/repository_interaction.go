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

// recordTables maps a record kind to the table holding its rows. Every table
// listed here has "id" and "is_new" columns.
var recordTables = map[models.RecordKind]string{
	models.KindBulletin: "bulletin_posts",
	models.KindTicket:   "tickets",
	models.KindFood:     "food_items",
	models.KindWishlist: "wishlist_items",
}

func recordTable(kind models.RecordKind) (string, error) {
	table, ok := recordTables[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRecordKind, kind)
	}
	return table, nil
}

const (
	upsertViewSuffix = "ON CONFLICT (kind, record_id, user_id) DO UPDATE SET viewed_at = excluded.viewed_at"
	upsertVoteSuffix = "ON CONFLICT (kind, record_id, user_id) DO UPDATE SET vote = excluded.vote, voted_at = excluded.voted_at"
)

type interactionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewInteractionRepository constructs an [InteractionRepository] over the
// record_views and record_votes tables.
func NewInteractionRepository(db *DB, logger *logger.Logger) InteractionRepository {
	logger.Debug().Msg("creating interaction repository")
	return &interactionRepository{
		db:     db,
		logger: logger,
	}
}

// RecordView returns [ErrRecordNotFound] when the record does not exist.
func (r *interactionRepository) RecordView(ctx context.Context, kind models.RecordKind, recordID, userID string, at time.Time) error {
	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		return r.db.markViewed(ctx, tx, kind, recordID, userID, at)
	})
	if err != nil && !errors.Is(err, ErrRecordNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*interactionRepository.RecordView").Msg("error recording view")
	}
	return err
}

// CastVote runs the read-decide-write cycle in one transaction. When decide
// fails nothing is written and old equals next.
func (r *interactionRepository) CastVote(ctx context.Context, kind models.RecordKind, recordID, userID string, at time.Time, decide VoteDecider) (models.Vote, models.Vote, error) {
	log := logger.FromContext(ctx)

	var old, next models.Vote
	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		if err := r.db.markViewed(ctx, tx, kind, recordID, userID, at); err != nil {
			return err
		}

		row, err := r.db.queryRow(ctx, tx, r.db.builder.Select("vote").From("record_votes").
			Where(sq.Eq{"kind": string(kind), "record_id": recordID, "user_id": userID}))
		if err != nil {
			return err
		}

		var current string
		if err = row.Scan(&current); err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		old = models.Vote(current)

		next, err = decide(old)
		if err != nil {
			next = old
			return err
		}

		if next == models.VoteNone {
			_, err = r.db.exec(ctx, tx, r.db.builder.Delete("record_votes").
				Where(sq.Eq{"kind": string(kind), "record_id": recordID, "user_id": userID}))
			return err
		}

		_, err = r.db.exec(ctx, tx, r.db.builder.Insert("record_votes").
			Columns("kind", "record_id", "user_id", "vote", "voted_at").
			Values(string(kind), recordID, userID, string(next), at.UTC()).
			Suffix(upsertVoteSuffix))
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*interactionRepository.CastVote").Msg("error casting vote")
		return old, old, err
	}

	return old, next, nil
}

// markViewed clears the record's global new flag and upserts the viewer.
func (db *DB) markViewed(ctx context.Context, q querier, kind models.RecordKind, recordID, userID string, at time.Time) error {
	table, err := recordTable(kind)
	if err != nil {
		return err
	}

	affected, err := db.exec(ctx, q, db.builder.Update(table).Set("is_new", false).Where(sq.Eq{"id": recordID}))
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	_, err = db.exec(ctx, q, db.builder.Insert("record_views").
		Columns("kind", "record_id", "user_id", "viewed_at").
		Values(string(kind), recordID, userID, at.UTC()).
		Suffix(upsertViewSuffix))
	return err
}

// attachInteractions fills ViewedBy on every header and, when tallies is not
// nil, the vote counts and the vote of userID. headers and tallies are
// parallel slices pointing into the records being loaded.
func (db *DB) attachInteractions(ctx context.Context, kind models.RecordKind, userID string, headers []*models.Interaction, tallies []*models.Tally) error {
	if len(headers) == 0 {
		return nil
	}

	ids := make([]string, len(headers))
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		ids[i] = h.ID
		index[h.ID] = i
		h.ViewedBy = make(map[string]time.Time)
	}

	rows, err := db.query(ctx, db, db.builder.Select("record_id", "user_id", "viewed_at").From("record_views").
		Where(sq.Eq{"kind": string(kind), "record_id": ids}))
	if err != nil {
		return err
	}
	for rows.Next() {
		var (
			recordID, viewer string
			viewedAt         time.Time
		)
		if err = rows.Scan(&recordID, &viewer, &viewedAt); err != nil {
			rows.Close()
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if i, ok := index[recordID]; ok {
			headers[i].ViewedBy[viewer] = viewedAt
		}
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if tallies == nil {
		return nil
	}

	rows, err = db.query(ctx, db, db.builder.Select("record_id", "user_id", "vote").From("record_votes").
		Where(sq.Eq{"kind": string(kind), "record_id": ids}))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var recordID, voter, vote string
		if err = rows.Scan(&recordID, &voter, &vote); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		i, ok := index[recordID]
		if !ok {
			continue
		}
		switch models.Vote(vote) {
		case models.VoteUp:
			tallies[i].Upvotes++
		case models.VoteDown:
			tallies[i].Downvotes++
		}
		if voter == userID {
			tallies[i].UserVote = models.Vote(vote)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}

// insertViews stores the viewers already present on a freshly created record.
func (db *DB) insertViews(ctx context.Context, q querier, kind models.RecordKind, header models.Interaction) error {
	if len(header.ViewedBy) == 0 {
		return nil
	}

	insert := db.builder.Insert("record_views").Columns("kind", "record_id", "user_id", "viewed_at")
	for userID, at := range header.ViewedBy {
		insert = insert.Values(string(kind), header.ID, userID, at.UTC())
	}
	_, err := db.exec(ctx, q, insert)
	return err
}
