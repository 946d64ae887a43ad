// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=RecipeServiceWrapper

import (
	"context"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

// AuthService registers accounts and exchanges credentials for tokens.
type AuthService interface {
	// RegisterUser stores a new account with a bcrypt-hashed password and
	// returns its id.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.UserID, error)

	// Login verifies the credentials and issues a token for the user.
	// Unknown email and wrong password both yield ErrWrongCredentials.
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)
}

// TokenService issues and verifies signed identity tokens.
type TokenService interface {
	Issue(ctx context.Context, userID models.UserID) (models.Token, error)

	// Verify returns the identity carried by signed, or ErrTokenIsExpired /
	// ErrTokenIsInvalid.
	Verify(ctx context.Context, signed string) (models.UserID, error)
}

// RecipeService implements the recipe use-cases. Mutations are permitted to
// the recipe owner only.
type RecipeService interface {
	CreateRecipe(ctx context.Context, input models.RecipeInput, owner models.UserID) (models.RecipeID, error)
	GetRecipe(ctx context.Context, id models.RecipeID) (models.Recipe, error)
	ListRecipes(ctx context.Context) ([]models.RecipeSummary, error)

	// ListMyRecipes returns the recipes of owner or ErrNoRecipesYet when
	// there are none.
	ListMyRecipes(ctx context.Context, owner models.UserID) ([]models.RecipeSummary, error)

	UpdateRecipe(ctx context.Context, id models.RecipeID, input models.RecipeInput, requester models.UserID) error
	DeleteRecipe(ctx context.Context, id models.RecipeID, requester models.UserID) error
}

// RecipeServiceWrapper defines middleware composition for RecipeService.
// Implementations wrap an existing RecipeService to add behavior such as
// logging or validating.
type RecipeServiceWrapper interface {
	Wrap(RecipeService) RecipeService // returns a decorated RecipeService applying additional behavior
}

// AppInfoService exposes build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
