// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/zivi-portal/models"
)

func TestStructValidator_Valid(t *testing.T) {
	v := NewStructValidator()

	err := v.Validate(context.Background(), models.NewUser{
		Email: "anna@zivi.ch", FirstName: "Anna", LastName: "Muster", Role: models.RoleUser,
	})
	assert.NoError(t, err)
}

func TestStructValidator_ReportsJSONFieldNames(t *testing.T) {
	v := NewStructValidator()

	err := v.Validate(context.Background(), &models.NewUser{Email: "not-an-email", FirstName: "A", LastName: "B", Role: "root"})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "email failed on email")
	assert.Contains(t, err.Error(), "role failed on oneof")
}

func TestStructValidator_Partial(t *testing.T) {
	v := NewStructValidator()
	details := models.CookingDetails{Cook: "", CostPerPerson: -1, IBAN: "CH93"}

	err := v.Validate(context.Background(), details, "IBAN")
	assert.NoError(t, err)

	err = v.Validate(context.Background(), details, "CostPerPerson")
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "cost_per_person")
	assert.NotContains(t, err.Error(), "cook")
}

func TestStructValidator_UnknownField(t *testing.T) {
	v := NewStructValidator()

	err := v.Validate(context.Background(), models.CookingDetails{}, "Nope")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestStructValidator_UnsupportedTypes(t *testing.T) {
	v := NewStructValidator()
	var nilPtr *models.NewUser

	assert.ErrorIs(t, v.Validate(context.Background(), nil), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), "text"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), nilPtr), ErrUnsupportedType)
}

func TestStructValidator_DiveIntoTags(t *testing.T) {
	v := NewStructValidator()

	assert.NoError(t, v.Validate(context.Background(), models.NewFoodItem{Name: "Curry", DietaryTags: []string{"Vegan", "Scharf"}}))

	err := v.Validate(context.Background(), models.NewFoodItem{Name: "Curry", DietaryTags: []string{"Vegan", "Keto"}})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "dietary_tags[1]")
}
