// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/zivi-portal/internal/logger"
	"github.com/MKhiriev/zivi-portal/models"
)

type mealPlanRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMealPlanRepository constructs a [MealPlanRepository] over the "meal_plan"
// and "meal_payments" tables. The five day rows are created by the migration.
func NewMealPlanRepository(db *DB, logger *logger.Logger) MealPlanRepository {
	logger.Debug().Msg("creating meal plan repository")
	return &mealPlanRepository{
		db:     db,
		logger: logger,
	}
}

func checkDay(day string) error {
	if !slices.Contains(models.Weekdays, day) {
		return fmt.Errorf("%w: %q", ErrUnknownDay, day)
	}
	return nil
}

// GetMealPlan returns the slots in weekday order.
func (r *mealPlanRepository) GetMealPlan(ctx context.Context) ([]models.MealPlanSlot, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.query(ctx, r.db, r.db.builder.
		Select("day", "food_item_id", "cook", "cost_per_person", "iban").
		From("meal_plan"))
	if err != nil {
		log.Err(err).Str("func", "*mealPlanRepository.GetMealPlan").Msg("error querying meal plan")
		return nil, err
	}

	slots := make([]models.MealPlanSlot, 0, len(models.Weekdays))
	for rows.Next() {
		var (
			slot       models.MealPlanSlot
			foodItemID sql.NullString
			cost       sql.NullFloat64
		)
		if err = rows.Scan(&slot.Day, &foodItemID, &slot.Cook, &cost, &slot.IBAN); err != nil {
			rows.Close()
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		slot.FoodItemID = foodItemID.String
		if cost.Valid {
			slot.CostPerPerson = &cost.Float64
		}
		slot.HasPaid = make(map[string]bool)
		slots = append(slots, slot)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	slices.SortFunc(slots, func(a, b models.MealPlanSlot) int {
		return slices.Index(models.Weekdays, a.Day) - slices.Index(models.Weekdays, b.Day)
	})

	rows, err = r.db.query(ctx, r.db, r.db.builder.Select("day", "user_id").From("meal_payments"))
	if err != nil {
		log.Err(err).Str("func", "*mealPlanRepository.GetMealPlan").Msg("error querying payments")
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var day, userID string
		if err = rows.Scan(&day, &userID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		for i := range slots {
			if slots[i].Day == day {
				slots[i].HasPaid[userID] = true
			}
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return slots, nil
}

func (r *mealPlanRepository) PlanMeal(ctx context.Context, day, foodItemID string, plannedFor time.Time) error {
	if err := checkDay(day); err != nil {
		return err
	}

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		if err := r.db.recordExists(ctx, tx, "food_items", foodItemID); err != nil {
			return err
		}

		if err := r.clearPlannedItem(ctx, tx, day); err != nil {
			return err
		}

		if _, err := r.db.exec(ctx, tx, r.db.builder.Update("food_items").
			Set("planned_for", plannedFor.UTC()).
			Where(sq.Eq{"id": foodItemID})); err != nil {
			return err
		}

		_, err := r.db.exec(ctx, tx, r.db.builder.Update("meal_plan").
			Set("food_item_id", foodItemID).
			Where(sq.Eq{"day": day}))
		return err
	})
	if err != nil && !errors.Is(err, ErrRecordNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*mealPlanRepository.PlanMeal").Msg("error planning meal")
	}
	return err
}

func (r *mealPlanRepository) RemovePlannedMeal(ctx context.Context, day string) error {
	if err := checkDay(day); err != nil {
		return err
	}

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		if err := r.clearPlannedItem(ctx, tx, day); err != nil {
			return err
		}

		if _, err := r.db.exec(ctx, tx, r.db.builder.Update("meal_plan").
			Set("food_item_id", nil).
			Set("cook", "").
			Set("cost_per_person", nil).
			Set("iban", "").
			Where(sq.Eq{"day": day})); err != nil {
			return err
		}

		_, err := r.db.exec(ctx, tx, r.db.builder.Delete("meal_payments").Where(sq.Eq{"day": day}))
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mealPlanRepository.RemovePlannedMeal").Msg("error removing meal")
	}
	return err
}

// clearPlannedItem resets PlannedFor on the item currently planned for day.
func (r *mealPlanRepository) clearPlannedItem(ctx context.Context, q querier, day string) error {
	row, err := r.db.queryRow(ctx, q, r.db.builder.Select("food_item_id").From("meal_plan").Where(sq.Eq{"day": day}))
	if err != nil {
		return err
	}

	var current sql.NullString
	if err = row.Scan(&current); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUnknownDay
		}
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if !current.Valid || current.String == "" {
		return nil
	}

	_, err = r.db.exec(ctx, q, r.db.builder.Update("food_items").
		Set("planned_for", nil).
		Where(sq.Eq{"id": current.String}))
	return err
}

func (r *mealPlanRepository) UpdateCookingDetails(ctx context.Context, day string, details models.CookingDetails) error {
	if err := checkDay(day); err != nil {
		return err
	}

	affected, err := r.db.exec(ctx, r.db, r.db.builder.Update("meal_plan").
		Set("cook", details.Cook).
		Set("cost_per_person", details.CostPerPerson).
		Set("iban", details.IBAN).
		Where(sq.Eq{"day": day}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mealPlanRepository.UpdateCookingDetails").Msg("error updating cooking details")
		return err
	}
	if affected == 0 {
		return ErrUnknownDay
	}
	return nil
}

// MarkAsPaid is idempotent; the first payment time is kept.
func (r *mealPlanRepository) MarkAsPaid(ctx context.Context, day, userID string, at time.Time) error {
	if err := checkDay(day); err != nil {
		return err
	}

	_, err := r.db.exec(ctx, r.db, r.db.builder.Insert("meal_payments").
		Columns("day", "user_id", "paid_at").
		Values(day, userID, at.UTC()).
		Suffix("ON CONFLICT (day, user_id) DO NOTHING"))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mealPlanRepository.MarkAsPaid").Msg("error marking payment")
	}
	return err
}
