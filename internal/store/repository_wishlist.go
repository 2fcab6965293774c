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

type wishlistRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewWishlistRepository constructs a [WishlistRepository] backed by the "wishlist_items" table.
func NewWishlistRepository(db *DB, logger *logger.Logger) WishlistRepository {
	logger.Debug().Msg("creating wishlist repository")
	return &wishlistRepository{
		db:     db,
		logger: logger,
	}
}

func (r *wishlistRepository) CreateWishlistItem(ctx context.Context, item models.WishlistItem) error {
	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		_, err := r.db.exec(ctx, tx, r.db.builder.Insert("wishlist_items").
			Columns("id", "author_id", "author", "title", "description", "category",
				"estimated_cost", "status", "is_new", "created_at").
			Values(item.ID, item.AuthorID, item.Author, item.Title, item.Description, item.Category,
				item.EstimatedCost, string(item.Status), item.IsNew, item.CreatedAt.UTC()))
		if err != nil {
			return err
		}
		return r.db.insertViews(ctx, tx, models.KindWishlist, item.Interaction)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*wishlistRepository.CreateWishlistItem").Msg("error creating wishlist item")
	}
	return err
}

func (r *wishlistRepository) selectWishlistItems() sq.SelectBuilder {
	return r.db.builder.
		Select("id", "author_id", "author", "created_at", "is_new", "title", "description", "category",
			"estimated_cost", "status", "fulfilled_at", "rejected_reason").
		From("wishlist_items")
}

func scanWishlistItem(row rowScanner) (models.WishlistItem, error) {
	var (
		item        models.WishlistItem
		status      string
		fulfilledAt *time.Time
	)
	err := row.Scan(&item.ID, &item.AuthorID, &item.Author, &item.CreatedAt, &item.IsNew,
		&item.Title, &item.Description, &item.Category, &item.EstimatedCost, &status,
		&fulfilledAt, &item.RejectedReason)
	if err != nil {
		return models.WishlistItem{}, err
	}
	item.Status = models.WishlistStatus(status)
	item.FulfilledAt = fulfilledAt
	return item, nil
}

// GetWishlistItem returns [ErrRecordNotFound] when no item has the given ID.
func (r *wishlistRepository) GetWishlistItem(ctx context.Context, itemID, userID string) (models.WishlistItem, error) {
	row, err := r.db.queryRow(ctx, r.db, r.selectWishlistItems().Where(sq.Eq{"id": itemID}))
	if err != nil {
		return models.WishlistItem{}, err
	}

	item, err := scanWishlistItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.WishlistItem{}, ErrRecordNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*wishlistRepository.GetWishlistItem").Msg("error scanning wishlist item")
		return models.WishlistItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	err = r.db.attachInteractions(ctx, models.KindWishlist, userID,
		[]*models.Interaction{&item.Interaction}, []*models.Tally{&item.Tally})
	return item, err
}

func (r *wishlistRepository) ListWishlistItems(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.query(ctx, r.db, r.selectWishlistItems().OrderBy("created_at DESC", "id"))
	if err != nil {
		log.Err(err).Str("func", "*wishlistRepository.ListWishlistItems").Msg("error querying wishlist items")
		return nil, err
	}

	items := make([]models.WishlistItem, 0)
	for rows.Next() {
		item, err := scanWishlistItem(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	headers := make([]*models.Interaction, len(items))
	tallies := make([]*models.Tally, len(items))
	for i := range items {
		headers[i] = &items[i].Interaction
		tallies[i] = &items[i].Tally
	}
	if err = r.db.attachInteractions(ctx, models.KindWishlist, userID, headers, tallies); err != nil {
		log.Err(err).Str("func", "*wishlistRepository.ListWishlistItems").Msg("error loading interactions")
		return nil, err
	}
	return items, nil
}

// UpdateWishlistStatus returns [ErrRecordNotFound] when the item does not exist.
func (r *wishlistRepository) UpdateWishlistStatus(ctx context.Context, item models.WishlistItem) error {
	affected, err := r.db.exec(ctx, r.db, r.db.builder.Update("wishlist_items").
		Set("status", string(item.Status)).
		Set("fulfilled_at", utcOrNil(item.FulfilledAt)).
		Set("rejected_reason", item.RejectedReason).
		Where(sq.Eq{"id": item.ID}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*wishlistRepository.UpdateWishlistStatus").Msg("error updating wishlist status")
		return err
	}
	if affected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
