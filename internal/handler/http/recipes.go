// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-recipe-keeper/internal/app"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

var (
	createRecipeMessages = map[error]string{
		service.ErrInvalidDataProvided: app.MsgRecipeFieldsRequired,
	}
	updateRecipeMessages = map[error]string{
		service.ErrInvalidDataProvided: app.MsgMissingRequiredFields,
		store.ErrNotRecipeOwner:        app.MsgNoPermissionToModify,
	}
	deleteRecipeMessages = map[error]string{
		store.ErrNotRecipeOwner: app.MsgNoPermissionToDelete,
	}
)

func (h *Handler) createRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r, "*Handler.createRecipe")
	if !ok {
		return
	}

	var input models.RecipeInput
	if !decodeJSON(w, r, "*Handler.createRecipe", &input) {
		return
	}

	recipeID, err := h.services.RecipeService.CreateRecipe(r.Context(), input, userID)
	if err != nil {
		respondError(w, r, "*Handler.createRecipe", err, createRecipeMessages)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgRecipeCreated, ID: int64(recipeID)}, http.StatusCreated)
}

func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.services.RecipeService.ListRecipes(r.Context())
	if err != nil {
		respondError(w, r, "*Handler.listRecipes", err, nil)
		return
	}

	utils.WriteJSON(w, models.RecipesResponse{Recipes: recipes}, http.StatusOK)
}

func (h *Handler) listMyRecipes(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r, "*Handler.listMyRecipes")
	if !ok {
		return
	}

	recipes, err := h.services.RecipeService.ListMyRecipes(r.Context(), userID)
	if errors.Is(err, service.ErrNoRecipesYet) {
		// an empty listing is reported as 404 with a message, not an error
		utils.WriteJSON(w, models.MessageResponse{Message: app.MsgNoRecipesYet}, http.StatusNotFound)
		return
	}
	if err != nil {
		respondError(w, r, "*Handler.listMyRecipes", err, nil)
		return
	}

	utils.WriteJSON(w, models.RecipesResponse{Recipes: recipes}, http.StatusOK)
}

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, err := recipeIDFromPath(r)
	if err != nil {
		respondError(w, r, "*Handler.getRecipe", err, nil)
		return
	}

	recipe, err := h.services.RecipeService.GetRecipe(r.Context(), recipeID)
	if err != nil {
		respondError(w, r, "*Handler.getRecipe", err, nil)
		return
	}

	utils.WriteJSON(w, recipe, http.StatusOK)
}

func (h *Handler) updateRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r, "*Handler.updateRecipe")
	if !ok {
		return
	}

	recipeID, err := recipeIDFromPath(r)
	if err != nil {
		respondError(w, r, "*Handler.updateRecipe", err, nil)
		return
	}

	var input models.RecipeInput
	if !decodeJSON(w, r, "*Handler.updateRecipe", &input) {
		return
	}

	if err = h.services.RecipeService.UpdateRecipe(r.Context(), recipeID, input, userID); err != nil {
		respondError(w, r, "*Handler.updateRecipe", err, updateRecipeMessages)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgRecipeUpdated}, http.StatusOK)
}

func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r, "*Handler.deleteRecipe")
	if !ok {
		return
	}

	recipeID, err := recipeIDFromPath(r)
	if err != nil {
		respondError(w, r, "*Handler.deleteRecipe", err, nil)
		return
	}

	if err = h.services.RecipeService.DeleteRecipe(r.Context(), recipeID, userID); err != nil {
		respondError(w, r, "*Handler.deleteRecipe", err, deleteRecipeMessages)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgRecipeDeleted}, http.StatusOK)
}

// decodeJSON reads the request body into dst. On failure it writes a 400
// response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, funcName string, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		logger.FromRequest(r).Info().Err(err).Str("func", funcName).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return false
	}
	return true
}

// requireUserID returns the identity stored by the auth middleware.
func requireUserID(w http.ResponseWriter, r *http.Request, funcName string) (models.UserID, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		respondError(w, r, funcName, ErrNoUserIDInContext, nil)
		return 0, false
	}
	return userID, true
}

// recipeIDFromPath parses the {id} route parameter. The route pattern only
// admits digits, so the remaining failure is an id too large for int64.
func recipeIDFromPath(r *http.Request) (models.RecipeID, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidRecipeID
	}
	return models.RecipeID(id), nil
}
