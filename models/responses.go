// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// MessageResponse is the body of successful mutations. ID is set when a
// resource was created.
type MessageResponse struct {
	Message string `json:"mensaje"`
	ID      int64  `json:"id,omitempty"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RecipesResponse wraps a recipe listing.
type RecipesResponse struct {
	Recipes []RecipeSummary `json:"recetas"`
}
