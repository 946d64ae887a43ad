// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer client for the recipe API.
//
// The primary abstraction is [ServerAdapter], which hides the REST routes and
// JSON shapes from the command-line client. Non-2xx responses are mapped to
// the sentinel errors in errors.go, carrying the server's message, so callers
// can use [errors.Is] (e.g. [ErrForbidden] for 403, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the recipe server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every authenticated
	// request.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none was set.
	Token() string

	// Register creates an account and returns its id.
	Register(ctx context.Context, req models.RegisterRequest) (models.UserID, error)

	// Login exchanges credentials for an access token. On success the token
	// is stored via SetToken and returned.
	Login(ctx context.Context, req models.LoginRequest) (string, error)

	CreateRecipe(ctx context.Context, input models.RecipeInput) (models.RecipeID, error)
	GetRecipe(ctx context.Context, id models.RecipeID) (models.Recipe, error)

	// ListRecipes returns every recipe with its author's name.
	ListRecipes(ctx context.Context) ([]models.RecipeSummary, error)

	// ListMyRecipes returns the caller's recipes. The server answers 404 when
	// there are none; that is reported as an empty slice.
	ListMyRecipes(ctx context.Context) ([]models.RecipeSummary, error)

	UpdateRecipe(ctx context.Context, id models.RecipeID, input models.RecipeInput) error
	DeleteRecipe(ctx context.Context, id models.RecipeID) error

	// ServerVersion returns the version string reported by GET /version.
	ServerVersion(ctx context.Context) (string, error)
}
