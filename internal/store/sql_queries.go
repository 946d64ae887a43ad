// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

const (
	usersTable   = "users"
	recipesTable = "recipes"

	userIDColumn   = "user_id"
	recipeIDColumn = "recipe_id"
)

// buildInsertUserQuery returns the INSERT for a new user. created_at and the
// id come from column defaults.
func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) sq.InsertBuilder {
	return b.Insert(usersTable).
		Columns("name", "email", "password_hash").
		Values(user.Name, user.Email, user.PasswordHash)
}

func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select("user_id", "name", "email", "password_hash", "created_at").
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildInsertRecipeQuery(b sq.StatementBuilderType, recipe models.Recipe) sq.InsertBuilder {
	return b.Insert(recipesTable).
		Columns("title", "description", "ingredients", "instructions", "owner_id").
		Values(recipe.Title, recipe.Description, recipe.Ingredients, recipe.Instructions, int64(recipe.OwnerID))
}

func buildSelectRecipeQuery(b sq.StatementBuilderType, id models.RecipeID) (string, []any, error) {
	return b.Select("recipe_id", "title", "description", "ingredients", "instructions", "owner_id", "created_at").
		From(recipesTable).
		Where(sq.Eq{"recipe_id": int64(id)}).
		ToSql()
}

// buildSelectRecipesQuery lists every recipe with its author's name, newest
// first. Recipes created within the same clock tick are ordered by id.
func buildSelectRecipesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("r.recipe_id", "r.title", "r.description", "u.name").
		From(recipesTable+" r").
		Join(usersTable+" u ON u.user_id = r.owner_id").
		OrderBy("r.created_at DESC", "r.recipe_id DESC").
		ToSql()
}

func buildSelectRecipesByOwnerQuery(b sq.StatementBuilderType, owner models.UserID) (string, []any, error) {
	return b.Select("recipe_id", "title", "description").
		From(recipesTable).
		Where(sq.Eq{"owner_id": int64(owner)}).
		OrderBy("created_at DESC", "recipe_id DESC").
		ToSql()
}

// buildUpdateRecipeQuery matches on both id and owner so the ownership check
// and the write happen in one statement.
func buildUpdateRecipeQuery(b sq.StatementBuilderType, recipe models.Recipe, requester models.UserID) (string, []any, error) {
	return b.Update(recipesTable).
		Set("title", recipe.Title).
		Set("description", recipe.Description).
		Set("ingredients", recipe.Ingredients).
		Set("instructions", recipe.Instructions).
		Where(sq.Eq{"recipe_id": int64(recipe.ID), "owner_id": int64(requester)}).
		ToSql()
}

func buildDeleteRecipeQuery(b sq.StatementBuilderType, id models.RecipeID, requester models.UserID) (string, []any, error) {
	return b.Delete(recipesTable).
		Where(sq.Eq{"recipe_id": int64(id), "owner_id": int64(requester)}).
		ToSql()
}

func buildSelectRecipeOwnerQuery(b sq.StatementBuilderType, id models.RecipeID) (string, []any, error) {
	return b.Select("owner_id").
		From(recipesTable).
		Where(sq.Eq{"recipe_id": int64(id)}).
		ToSql()
}
