// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"time"
)

// RecipeID is the numeric identifier of a stored recipe.
type RecipeID int64

// String returns the base-10 form used in request paths.
func (id RecipeID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Recipe is a cooking recipe owned by exactly one user.
//
// Title, Ingredients and Instructions are required; Description is optional.
// OwnerID is set from the authenticated identity at creation and never
// changes afterwards.
type Recipe struct {
	ID           RecipeID  `json:"id_receta"`
	Title        string    `json:"titulo"`
	Description  string    `json:"descripcion"`
	Ingredients  string    `json:"ingredientes"`
	Instructions string    `json:"instrucciones"`
	OwnerID      UserID    `json:"id_usuario"`
	CreatedAt    time.Time `json:"creado_en"`
}

// RecipeSummary is a catalogue entry. Author is filled only by the
// all-recipes listing, which joins against users.
type RecipeSummary struct {
	ID          RecipeID `json:"id_receta"`
	Title       string   `json:"titulo"`
	Description string   `json:"descripcion"`
	Author      string   `json:"autor,omitempty"`
}

// RecipeInput carries the mutable fields of a recipe as sent by clients
// on create and update.
type RecipeInput struct {
	Title        string `json:"titulo"`
	Description  string `json:"descripcion"`
	Ingredients  string `json:"ingredientes"`
	Instructions string `json:"instrucciones"`
}

// ToRecipe builds a Recipe owned by ownerID from the input fields.
func (in RecipeInput) ToRecipe(id RecipeID, ownerID UserID) Recipe {
	return Recipe{
		ID:           id,
		Title:        in.Title,
		Description:  in.Description,
		Ingredients:  in.Ingredients,
		Instructions: in.Instructions,
		OwnerID:      ownerID,
	}
}
