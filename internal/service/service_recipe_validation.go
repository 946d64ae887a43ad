// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// RecipeValidationService rejects malformed recipe input before it reaches
// the wrapped RecipeService. Read operations pass through unchanged.
type RecipeValidationService struct {
	inner     RecipeService
	validator validators.Validator
}

func NewRecipeValidationService() RecipeServiceWrapper {
	return &RecipeValidationService{
		validator: validators.NewRecipeValidator(),
	}
}

func (v *RecipeValidationService) CreateRecipe(ctx context.Context, input models.RecipeInput, owner models.UserID) (models.RecipeID, error) {
	if err := v.validator.Validate(ctx, input.ToRecipe(0, owner)); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("recipe validation failed before creation")
		return 0, validationError(err)
	}

	return v.inner.CreateRecipe(ctx, input, owner)
}

func (v *RecipeValidationService) GetRecipe(ctx context.Context, id models.RecipeID) (models.Recipe, error) {
	return v.inner.GetRecipe(ctx, id)
}

func (v *RecipeValidationService) ListRecipes(ctx context.Context) ([]models.RecipeSummary, error) {
	return v.inner.ListRecipes(ctx)
}

func (v *RecipeValidationService) ListMyRecipes(ctx context.Context, owner models.UserID) ([]models.RecipeSummary, error) {
	return v.inner.ListMyRecipes(ctx, owner)
}

func (v *RecipeValidationService) UpdateRecipe(ctx context.Context, id models.RecipeID, input models.RecipeInput, requester models.UserID) error {
	if err := v.validator.Validate(ctx, input.ToRecipe(id, requester)); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("recipe_id", int64(id)).Msg("recipe validation failed before update")
		return validationError(err)
	}

	return v.inner.UpdateRecipe(ctx, id, input, requester)
}

func (v *RecipeValidationService) DeleteRecipe(ctx context.Context, id models.RecipeID, requester models.UserID) error {
	return v.inner.DeleteRecipe(ctx, id, requester)
}

func (v *RecipeValidationService) Wrap(wrapper RecipeService) RecipeService {
	v.inner = wrapper
	return v
}

// validationError classifies a validator failure. A non-positive owner can
// only come from a bad identity, so it is reported as an invalid token.
func validationError(err error) error {
	if errors.Is(err, validators.ErrInvalidOwnerID) {
		return fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
