// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

// Field names accepted by [RecipeValidator].
const (
	FieldTitle        = "title"
	FieldIngredients  = "ingredients"
	FieldInstructions = "instructions"
	FieldOwnerID      = "owner_id"
)

// RecipeValidator implements [Validator] for models.Recipe. Text fields
// count as empty when they hold only whitespace.
type RecipeValidator struct{}

// NewRecipeValidator constructs a [RecipeValidator].
func NewRecipeValidator() Validator {
	return &RecipeValidator{}
}

// Validate checks the requested fields of a Recipe. With no fields, title,
// ingredients, instructions and owner are checked.
func (v *RecipeValidator) Validate(ctx context.Context, i any, fields ...string) error {
	switch value := i.(type) {
	case models.Recipe:
		return v.validateRecipe(value, fields...)
	case *models.Recipe:
		return v.validateRecipe(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecipeValidator) validateRecipe(recipe models.Recipe, fields ...string) error {
	fields = defaultFields(fields, FieldTitle, FieldIngredients, FieldInstructions, FieldOwnerID)

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if isBlank(recipe.Title) {
				return ErrEmptyTitle
			}
		case FieldIngredients:
			if isBlank(recipe.Ingredients) {
				return ErrEmptyIngredients
			}
		case FieldInstructions:
			if isBlank(recipe.Instructions) {
				return ErrEmptyInstructions
			}
		case FieldOwnerID:
			if recipe.OwnerID <= 0 {
				return ErrInvalidOwnerID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func defaultFields(fields []string, defaults ...string) []string {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
