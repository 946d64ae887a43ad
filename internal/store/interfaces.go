// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

// UserRepository persists registered accounts. Email is unique.
type UserRepository interface {
	// CreateUser stores user and returns the id assigned by the database.
	// A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.UserID, error)

	// FindUserByEmail returns the user registered with email or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// RecipeRepository persists recipes and enforces ownership on mutation.
type RecipeRepository interface {
	CreateRecipe(ctx context.Context, recipe models.Recipe) (models.RecipeID, error)
	GetRecipe(ctx context.Context, id models.RecipeID) (models.Recipe, error)

	// ListRecipes returns every recipe with its author name, newest first.
	ListRecipes(ctx context.Context) ([]models.RecipeSummary, error)

	// ListRecipesByOwner returns the recipes created by owner, newest first.
	ListRecipesByOwner(ctx context.Context, owner models.UserID) ([]models.RecipeSummary, error)

	// UpdateRecipe overwrites the mutable fields of recipe.ID if requester
	// owns it. Returns [ErrRecipeNotFound] or [ErrNotRecipeOwner] otherwise.
	UpdateRecipe(ctx context.Context, recipe models.Recipe, requester models.UserID) error

	// DeleteRecipe removes id if requester owns it, with the same errors as
	// UpdateRecipe.
	DeleteRecipe(ctx context.Context, id models.RecipeID, requester models.UserID) error
}
