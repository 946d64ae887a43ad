// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// recipeService is the default implementation of RecipeService. Ownership
// is enforced by the repository; this layer normalises input and shapes
// results.
type recipeService struct {
	recipeRepository store.RecipeRepository

	logger *logger.Logger
}

func NewRecipeService(recipeRepository store.RecipeRepository, logger *logger.Logger) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		logger:           logger,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, input models.RecipeInput, owner models.UserID) (models.RecipeID, error) {
	id, err := s.recipeRepository.CreateRecipe(ctx, trimmed(input).ToRecipe(0, owner))
	if err != nil {
		return 0, fmt.Errorf("error creating recipe: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("recipe_id", int64(id)).
		Int64("owner_id", int64(owner)).
		Msg("recipe created")
	return id, nil
}

func (s *recipeService) GetRecipe(ctx context.Context, id models.RecipeID) (models.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipe(ctx, id)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("error getting recipe %d: %w", id, err)
	}

	return recipe, nil
}

func (s *recipeService) ListRecipes(ctx context.Context) ([]models.RecipeSummary, error) {
	recipes, err := s.recipeRepository.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing recipes: %w", err)
	}

	return recipes, nil
}

func (s *recipeService) ListMyRecipes(ctx context.Context, owner models.UserID) ([]models.RecipeSummary, error) {
	recipes, err := s.recipeRepository.ListRecipesByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("error listing recipes of user %d: %w", owner, err)
	}

	if len(recipes) == 0 {
		return nil, ErrNoRecipesYet
	}

	return recipes, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id models.RecipeID, input models.RecipeInput, requester models.UserID) error {
	if err := s.recipeRepository.UpdateRecipe(ctx, trimmed(input).ToRecipe(id, requester), requester); err != nil {
		return fmt.Errorf("error updating recipe %d: %w", id, err)
	}

	logger.FromContext(ctx).Info().Int64("recipe_id", int64(id)).Msg("recipe updated")
	return nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id models.RecipeID, requester models.UserID) error {
	if err := s.recipeRepository.DeleteRecipe(ctx, id, requester); err != nil {
		return fmt.Errorf("error deleting recipe %d: %w", id, err)
	}

	logger.FromContext(ctx).Info().Int64("recipe_id", int64(id)).Msg("recipe deleted")
	return nil
}

func trimmed(in models.RecipeInput) models.RecipeInput {
	return models.RecipeInput{
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		Ingredients:  strings.TrimSpace(in.Ingredients),
		Instructions: strings.TrimSpace(in.Instructions),
	}
}
