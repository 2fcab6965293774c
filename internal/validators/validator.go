// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StructValidator checks request models against their `validate` struct tags.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator returns a [Validator] backed by go-playground/validator.
// Field names in errors are the JSON names of the struct fields.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return &StructValidator{validate: v}
}

// Validate checks obj. When fields are given only those struct fields (by Go
// name) are checked.
func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if !isStruct(obj) {
		return ErrUnsupportedType
	}

	for _, field := range fields {
		if !hasField(obj, field) {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return ErrUnsupportedType
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		problems := make([]string, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			problems = append(problems, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
	}

	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

func structType(obj any) (reflect.Type, bool) {
	t := reflect.TypeOf(obj)
	if t == nil {
		return nil, false
	}
	if t.Kind() == reflect.Pointer {
		if reflect.ValueOf(obj).IsNil() {
			return nil, false
		}
		t = t.Elem()
	}
	return t, t.Kind() == reflect.Struct
}

func isStruct(obj any) bool {
	_, ok := structType(obj)
	return ok
}

func hasField(obj any, name string) bool {
	t, _ := structType(obj)
	head, _, _ := strings.Cut(name, ".")
	_, ok := t.FieldByName(head)
	return ok
}
