// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/zivi-portal/internal/logger"
	"github.com/MKhiriev/zivi-portal/models"
)

type foodRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFoodRepository constructs a [FoodRepository] backed by the "food_items" table.
// Dietary tags are stored as a JSON array in a text column.
func NewFoodRepository(db *DB, logger *logger.Logger) FoodRepository {
	logger.Debug().Msg("creating food repository")
	return &foodRepository{
		db:     db,
		logger: logger,
	}
}

func (r *foodRepository) CreateFoodItem(ctx context.Context, item models.FoodItem) error {
	tags := item.DietaryTags
	if tags == nil {
		tags = []string{}
	}
	encodedTags, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("error encoding dietary tags: %w", err)
	}

	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		_, err := r.db.exec(ctx, tx, r.db.builder.Insert("food_items").
			Columns("id", "author_id", "author", "name", "description", "dietary_tags", "is_new", "created_at").
			Values(item.ID, item.AuthorID, item.Author, item.Name, item.Description, string(encodedTags),
				item.IsNew, item.CreatedAt.UTC()))
		if err != nil {
			return err
		}
		return r.db.insertViews(ctx, tx, models.KindFood, item.Interaction)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*foodRepository.CreateFoodItem").Msg("error creating food item")
	}
	return err
}

func (r *foodRepository) selectFoodItems() sq.SelectBuilder {
	return r.db.builder.
		Select("id", "author_id", "author", "created_at", "is_new", "name", "description", "dietary_tags", "planned_for").
		From("food_items")
}

func scanFoodItem(row rowScanner) (models.FoodItem, error) {
	var (
		item       models.FoodItem
		tags       string
		plannedFor *time.Time
	)
	err := row.Scan(&item.ID, &item.AuthorID, &item.Author, &item.CreatedAt, &item.IsNew,
		&item.Name, &item.Description, &tags, &plannedFor)
	if err != nil {
		return models.FoodItem{}, err
	}
	item.PlannedFor = plannedFor

	item.DietaryTags = []string{}
	if err = json.Unmarshal([]byte(tags), &item.DietaryTags); err != nil {
		return models.FoodItem{}, fmt.Errorf("error decoding dietary tags: %w", err)
	}
	return item, nil
}

// GetFoodItem returns [ErrRecordNotFound] when no item has the given ID.
func (r *foodRepository) GetFoodItem(ctx context.Context, itemID, userID string) (models.FoodItem, error) {
	row, err := r.db.queryRow(ctx, r.db, r.selectFoodItems().Where(sq.Eq{"id": itemID}))
	if err != nil {
		return models.FoodItem{}, err
	}

	item, err := scanFoodItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.FoodItem{}, ErrRecordNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*foodRepository.GetFoodItem").Msg("error scanning food item")
		return models.FoodItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	err = r.db.attachInteractions(ctx, models.KindFood, userID,
		[]*models.Interaction{&item.Interaction}, []*models.Tally{&item.Tally})
	return item, err
}

func (r *foodRepository) ListFoodItems(ctx context.Context, userID string) ([]models.FoodItem, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.query(ctx, r.db, r.selectFoodItems().OrderBy("created_at DESC", "id"))
	if err != nil {
		log.Err(err).Str("func", "*foodRepository.ListFoodItems").Msg("error querying food items")
		return nil, err
	}

	items := make([]models.FoodItem, 0)
	for rows.Next() {
		item, err := scanFoodItem(rows)
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
	if err = r.db.attachInteractions(ctx, models.KindFood, userID, headers, tallies); err != nil {
		log.Err(err).Str("func", "*foodRepository.ListFoodItems").Msg("error loading interactions")
		return nil, err
	}
	return items, nil
}
