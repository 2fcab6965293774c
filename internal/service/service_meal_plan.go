// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/zivi-portal/internal/logger"
	"github.com/MKhiriev/zivi-portal/internal/store"
	"github.com/MKhiriev/zivi-portal/internal/validators"
	"github.com/MKhiriev/zivi-portal/models"
)

type mealPlanService struct {
	mealPlanRepository store.MealPlanRepository
	foodRepository     store.FoodRepository
	validator          validators.Validator
	clock              clock

	// location decides which calendar day "today" is when a meal is planned.
	location *time.Location

	logger *logger.Logger
}

func NewMealPlanService(mealPlan store.MealPlanRepository, food store.FoodRepository, validator validators.Validator, logger *logger.Logger) MealPlanService {
	return &mealPlanService{
		mealPlanRepository: mealPlan,
		foodRepository:     food,
		validator:          validator,
		location:           time.Local,
		logger:             logger,
	}
}

// WeeklyPlan returns one assignment per weekday, Montag to Freitag.
func (s *mealPlanService) WeeklyPlan(ctx context.Context, actor models.User) ([]models.CookingAssignment, error) {
	if err := requireUser(actor); err != nil {
		return nil, err
	}

	slots, err := s.mealPlanRepository.GetMealPlan(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading meal plan: %w", err)
	}

	plan := make([]models.CookingAssignment, 0, len(slots))
	for _, slot := range slots {
		assignment, err := s.toAssignment(ctx, slot, actor.ID)
		if err != nil {
			return nil, err
		}
		plan = append(plan, assignment)
	}
	return plan, nil
}

// PlanMeal puts the food item on day. Cook, cost, IBAN and payments of the
// day are kept. The item is marked as planned for today; the item it
// replaces is unmarked.
func (s *mealPlanService) PlanMeal(ctx context.Context, actor models.User, day, foodItemID string) (models.CookingAssignment, error) {
	if err := requireUser(actor); err != nil {
		return models.CookingAssignment{}, err
	}

	if err := s.validator.Validate(ctx, models.PlanMealRequest{FoodItemID: foodItemID}); err != nil {
		return models.CookingAssignment{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.mealPlanRepository.PlanMeal(ctx, day, foodItemID, s.today()); err != nil {
		return models.CookingAssignment{}, fmt.Errorf("error planning meal: %w", err)
	}

	logger.FromContext(ctx).Info().Str("day", day).Str("food_item_id", foodItemID).Msg("meal planned")
	return s.assignment(ctx, day, actor.ID)
}

// RemovePlannedMeal clears the whole assignment of day, payments included.
func (s *mealPlanService) RemovePlannedMeal(ctx context.Context, actor models.User, day string) (models.CookingAssignment, error) {
	if err := requireUser(actor); err != nil {
		return models.CookingAssignment{}, err
	}

	if err := s.mealPlanRepository.RemovePlannedMeal(ctx, day); err != nil {
		return models.CookingAssignment{}, fmt.Errorf("error removing planned meal: %w", err)
	}

	return s.assignment(ctx, day, actor.ID)
}

func (s *mealPlanService) UpdateCookingDetails(ctx context.Context, actor models.User, day string, details models.CookingDetails) (models.CookingAssignment, error) {
	if err := requireUser(actor); err != nil {
		return models.CookingAssignment{}, err
	}

	details.Cook = strings.TrimSpace(details.Cook)
	details.IBAN = strings.TrimSpace(details.IBAN)
	if err := s.validator.Validate(ctx, details); err != nil {
		return models.CookingAssignment{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.mealPlanRepository.UpdateCookingDetails(ctx, day, details); err != nil {
		return models.CookingAssignment{}, fmt.Errorf("error updating cooking details: %w", err)
	}

	return s.assignment(ctx, day, actor.ID)
}

// MarkAsPaid records the actor's payment for day. There is no way back.
func (s *mealPlanService) MarkAsPaid(ctx context.Context, actor models.User, day string) (models.CookingAssignment, error) {
	if err := requireUser(actor); err != nil {
		return models.CookingAssignment{}, err
	}

	if err := s.mealPlanRepository.MarkAsPaid(ctx, day, actor.ID, s.clock.now()); err != nil {
		return models.CookingAssignment{}, fmt.Errorf("error marking payment: %w", err)
	}

	return s.assignment(ctx, day, actor.ID)
}

func (s *mealPlanService) assignment(ctx context.Context, day, userID string) (models.CookingAssignment, error) {
	slots, err := s.mealPlanRepository.GetMealPlan(ctx)
	if err != nil {
		return models.CookingAssignment{}, fmt.Errorf("error loading meal plan: %w", err)
	}

	for _, slot := range slots {
		if slot.Day == day {
			return s.toAssignment(ctx, slot, userID)
		}
	}
	return models.CookingAssignment{}, store.ErrUnknownDay
}

func (s *mealPlanService) toAssignment(ctx context.Context, slot models.MealPlanSlot, userID string) (models.CookingAssignment, error) {
	assignment := models.CookingAssignment{
		Day:           slot.Day,
		Cook:          slot.Cook,
		CostPerPerson: slot.CostPerPerson,
		IBAN:          slot.IBAN,
		HasPaid:       slot.HasPaid,
	}
	if assignment.HasPaid == nil {
		assignment.HasPaid = map[string]bool{}
	}

	if slot.FoodItemID == "" {
		return assignment, nil
	}

	item, err := s.foodRepository.GetFoodItem(ctx, slot.FoodItemID, userID)
	if errors.Is(err, store.ErrRecordNotFound) {
		return assignment, nil
	}
	if err != nil {
		return models.CookingAssignment{}, fmt.Errorf("error loading planned food item: %w", err)
	}
	assignment.FoodItem = &item
	return assignment, nil
}

// today is midnight of the current day in the plan's location.
func (s *mealPlanService) today() time.Time {
	y, m, d := s.clock.now().In(s.location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.location)
}
