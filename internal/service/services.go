// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
)

// Services groups the business services handed to the transport layer.
type Services struct {
	AuthService    AuthService
	TokenService   TokenService
	RecipeService  RecipeService
	AppInfoService AppInfoService
}

// NewServices wires the services over storages. RecipeService is returned
// wrapped in input validation.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	tokenService := NewTokenService(cfg.App, logger)
	recipeService := NewRecipeValidationService().Wrap(NewRecipeService(storages.RecipeRepository, logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, tokenService, cfg.App, logger),
		TokenService:   tokenService,
		RecipeService:  recipeService,
		AppInfoService: appInfoService,
	}, nil
}
