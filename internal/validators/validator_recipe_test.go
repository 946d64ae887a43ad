// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validRecipe() models.Recipe {
	return models.Recipe{
		ID:           1,
		Title:        "Tarta",
		Ingredients:  "harina",
		Instructions: "hornear",
		OwnerID:      2,
	}
}

func TestNewRecipeValidator(t *testing.T) {
	require.NotNil(t, NewRecipeValidator())
}

func TestRecipeValidator_Validate(t *testing.T) {
	ctx := context.Background()
	v := NewRecipeValidator()

	tests := []struct {
		name    string
		input   any
		fields  []string
		wantErr error
	}{
		{name: "valid recipe", input: validRecipe()},
		{name: "valid recipe pointer", input: func() *models.Recipe { r := validRecipe(); return &r }()},
		{name: "empty description allowed", input: models.Recipe{Title: "t", Ingredients: "i", Instructions: "s", OwnerID: 1}},
		{
			name:    "blank title",
			input:   models.Recipe{Title: "   ", Ingredients: "i", Instructions: "s", OwnerID: 1},
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "tab-only ingredients",
			input:   &models.Recipe{Title: "t", Ingredients: "\t\n", Instructions: "s", OwnerID: 1},
			wantErr: ErrEmptyIngredients,
		},
		{
			name:    "missing instructions",
			input:   models.Recipe{Title: "t", Ingredients: "i", OwnerID: 1},
			wantErr: ErrEmptyInstructions,
		},
		{
			name:    "missing owner",
			input:   func() models.Recipe { r := validRecipe(); r.OwnerID = 0; return r }(),
			wantErr: ErrInvalidOwnerID,
		},
		{
			name:    "negative owner",
			input:   func() models.Recipe { r := validRecipe(); r.OwnerID = -1; return r }(),
			wantErr: ErrInvalidOwnerID,
		},
		{
			name:  "recipe id is not validated",
			input: func() models.Recipe { r := validRecipe(); r.ID = 0; return r }(),
		},
		{
			name:   "scoped to title ignores other fields",
			input:  models.Recipe{Title: "t"},
			fields: []string{FieldTitle},
		},
		{
			name:    "unknown field",
			input:   validRecipe(),
			fields:  []string{"calories"},
			wantErr: ErrUnknownField,
		},
		{name: "input must be built into a recipe first", input: models.RecipeInput{Title: "t", Ingredients: "i", Instructions: "s"}, wantErr: ErrUnsupportedType},
		{name: "unsupported type", input: 42, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.input, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
