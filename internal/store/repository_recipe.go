// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// recipeRepository is the SQL implementation of [RecipeRepository] over the
// "recipes" table.
//
// Mutations are issued as a single conditional statement matching both id and
// owner. Only when it affects nothing is the row read again, to tell a
// missing recipe from one owned by someone else.
type recipeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRecipeRepository constructs a [RecipeRepository] backed by db.
func NewRecipeRepository(db *DB, logger *logger.Logger) RecipeRepository {
	logger.Debug().Msg("creating recipe repository")
	return &recipeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe models.Recipe) (models.RecipeID, error) {
	log := logger.FromContext(ctx)

	id, err := r.db.insertReturningID(ctx, buildInsertRecipeQuery(r.db.builder, recipe), recipeIDColumn)
	if err != nil {
		if errors.Is(err, ErrBuildingSQLQuery) {
			log.Err(err).Str("func", "*recipeRepository.CreateRecipe").Msg("error building insert query")
			return 0, err
		}

		if r.db.errorClassificator.Classify(err) == ForeignKeyViolation {
			log.Warn().Str("func", "*recipeRepository.CreateRecipe").
				Int64("owner_id", int64(recipe.OwnerID)).
				Msg("recipe references a missing user")
			return 0, ErrOwnerNotFound
		}

		log.Err(err).Str("func", "*recipeRepository.CreateRecipe").Msg("error inserting recipe")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return models.RecipeID(id), nil
}

func (r *recipeRepository) GetRecipe(ctx context.Context, id models.RecipeID) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRecipeQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.GetRecipe").Msg("error building select query")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var recipe models.Recipe
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&recipe.ID,
		&recipe.Title,
		&recipe.Description,
		&recipe.Ingredients,
		&recipe.Instructions,
		&recipe.OwnerID,
		&recipe.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Recipe{}, ErrRecipeNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.GetRecipe").Msg("error selecting recipe")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return recipe, nil
}

func (r *recipeRepository) ListRecipes(ctx context.Context) ([]models.RecipeSummary, error) {
	query, args, err := buildSelectRecipesQuery(r.db.builder)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*recipeRepository.ListRecipes").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.querySummaries(ctx, "*recipeRepository.ListRecipes", query, args, true)
}

func (r *recipeRepository) ListRecipesByOwner(ctx context.Context, owner models.UserID) ([]models.RecipeSummary, error) {
	query, args, err := buildSelectRecipesByOwnerQuery(r.db.builder, owner)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*recipeRepository.ListRecipesByOwner").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.querySummaries(ctx, "*recipeRepository.ListRecipesByOwner", query, args, false)
}

// querySummaries runs a listing query. withAuthor selects whether each row
// carries a fourth column with the author name. The result is never nil.
func (r *recipeRepository) querySummaries(ctx context.Context, funcName, query string, args []any, withAuthor bool) ([]models.RecipeSummary, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	summaries := make([]models.RecipeSummary, 0)
	for rows.Next() {
		var s models.RecipeSummary
		dest := []any{&s.ID, &s.Title, &s.Description}
		if withAuthor {
			dest = append(dest, &s.Author)
		}

		if err := rows.Scan(dest...); err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning recipe row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating recipe rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return summaries, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe models.Recipe, requester models.UserID) error {
	query, args, err := buildUpdateRecipeQuery(r.db.builder, recipe, requester)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*recipeRepository.UpdateRecipe").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOwned(ctx, "*recipeRepository.UpdateRecipe", query, args, recipe.ID, requester)
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id models.RecipeID, requester models.UserID) error {
	query, args, err := buildDeleteRecipeQuery(r.db.builder, id, requester)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*recipeRepository.DeleteRecipe").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOwned(ctx, "*recipeRepository.DeleteRecipe", query, args, id, requester)
}

// execOwned runs a mutation conditioned on id and requester. When no row is
// affected it looks the recipe up once to return [ErrRecipeNotFound] or
// [ErrNotRecipeOwner].
func (r *recipeRepository) execOwned(ctx context.Context, funcName, query string, args []any, id models.RecipeID, requester models.UserID) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected > 0 {
		return nil
	}

	owner, err := r.recipeOwner(ctx, id)
	if err != nil {
		return err
	}
	if owner != requester {
		log.Info().Str("func", funcName).
			Int64("recipe_id", int64(id)).
			Int64("requester", int64(requester)).
			Msg("requester does not own recipe")
		return ErrNotRecipeOwner
	}

	// the row matched but the driver reported nothing affected
	return nil
}

func (r *recipeRepository) recipeOwner(ctx context.Context, id models.RecipeID) (models.UserID, error) {
	query, args, err := buildSelectRecipeOwnerQuery(r.db.builder, id)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var owner models.UserID
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrRecipeNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*recipeRepository.recipeOwner").Msg("error selecting recipe owner")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return owner, nil
}
