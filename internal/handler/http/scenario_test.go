// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-recipe-keeper/internal/app"
	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// newSQLiteRouter wires the real storages and services over a throwaway
// SQLite file.
func newSQLiteRouter(t *testing.T) http.Handler {
	t.Helper()
	ctx := context.Background()

	cfg := config.StructuredConfig{
		App: config.App{
			TokenSignKey:  "test-sign-key",
			TokenIssuer:   "recipe-keeper-test",
			TokenDuration: time.Hour,
			BcryptCost:    bcrypt.MinCost,
			Version:       "test",
		},
		Storage: config.Storage{DB: config.DB{
			Driver: config.DriverSQLite,
			DSN:    filepath.Join(t.TempDir(), "recipes.db"),
		}},
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	services, err := service.NewServices(storages, cfg, logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, cfg.Server, logger.Nop()).Init()
}

func loginToken(t *testing.T, router http.Handler, email, password string) string {
	t.Helper()
	rec := serve(t, router, http.MethodPost, "/usuarios/login", "", jsonBody(t, models.LoginRequest{Email: email, Password: password}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestScenario_OwnershipLifecycle(t *testing.T) {
	router := newSQLiteRouter(t)

	ana := models.RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "pw123"}
	rec := serve(t, router, http.MethodPost, "/usuarios/registrar", "", jsonBody(t, ana))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = serve(t, router, http.MethodPost, "/usuarios/registrar", "", jsonBody(t, ana))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgUserAlreadyExists, decodeError(t, rec))

	rec = serve(t, router, http.MethodPost, "/usuarios/login", "", jsonBody(t, models.LoginRequest{Email: "ana@x.com", Password: "wrong"}))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	anaToken := loginToken(t, router, "ana@x.com", "pw123")

	rec = serve(t, router, http.MethodGet, "/recetas/mis-recetas", anaToken, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgNoRecipesYet, decodeMessage(t, rec).Message)

	tarta := models.RecipeInput{Title: "Tarta", Ingredients: "harina,huevo", Instructions: "mezclar y hornear"}
	rec = serve(t, router, http.MethodPost, "/recetas/crear", anaToken, jsonBody(t, tarta))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	recipeID := decodeMessage(t, rec).ID
	require.Positive(t, recipeID)

	rec = serve(t, router, http.MethodGet, "/recetas/mis-recetas", anaToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	mine := decodeRecipes(t, rec)
	require.Len(t, mine, 1)
	assert.Equal(t, "Tarta", mine[0].Title)

	bob := models.RegisterRequest{Name: "Bob", Email: "bob@x.com", Password: "pw456"}
	rec = serve(t, router, http.MethodPost, "/usuarios/registrar", "", jsonBody(t, bob))
	require.Equal(t, http.StatusCreated, rec.Code)
	bobToken := loginToken(t, router, "bob@x.com", "pw456")

	rec = serve(t, router, http.MethodGet, "/recetas/", bobToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	all := decodeRecipes(t, rec)
	require.Len(t, all, 1)
	assert.Equal(t, "Ana", all[0].Author)

	target := "/recetas/modificar/" + itoa(recipeID)
	stolen := models.RecipeInput{Title: "Robada", Ingredients: "x", Instructions: "y"}
	rec = serve(t, router, http.MethodPut, target, bobToken, jsonBody(t, stolen))
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, app.MsgNoPermissionToModify, decodeError(t, rec))

	rec = serve(t, router, http.MethodDelete, "/recetas/eliminar/"+itoa(recipeID), bobToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, app.MsgNoPermissionToDelete, decodeError(t, rec))

	rec = serve(t, router, http.MethodGet, "/recetas/"+itoa(recipeID), bobToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Recipe
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Tarta", got.Title)

	rec = serve(t, router, http.MethodDelete, "/recetas/eliminar/"+itoa(recipeID), anaToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, app.MsgRecipeDeleted, decodeMessage(t, rec).Message)

	rec = serve(t, router, http.MethodDelete, "/recetas/eliminar/"+itoa(recipeID), anaToken, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgRecipeNotFound, decodeError(t, rec))
}

func TestScenario_UpdateBlankFieldRejected(t *testing.T) {
	router := newSQLiteRouter(t)

	rec := serve(t, router, http.MethodPost, "/usuarios/registrar", "", jsonBody(t, models.RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "pw123"}))
	require.Equal(t, http.StatusCreated, rec.Code)
	token := loginToken(t, router, "ana@x.com", "pw123")

	rec = serve(t, router, http.MethodPost, "/recetas/crear", token, jsonBody(t, models.RecipeInput{Title: "Tarta", Ingredients: "harina", Instructions: "hornear"}))
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decodeMessage(t, rec).ID

	rec = serve(t, router, http.MethodPut, "/recetas/modificar/"+itoa(id), token, jsonBody(t, models.RecipeInput{Title: "  ", Ingredients: "harina", Instructions: "hornear"}))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgMissingRequiredFields, decodeError(t, rec))

	rec = serve(t, router, http.MethodPut, "/recetas/modificar/"+itoa(id), token, jsonBody(t, models.RecipeInput{Title: "Tarta fina", Ingredients: "harina", Instructions: "hornear"}))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, router, http.MethodGet, "/recetas/"+itoa(id), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"titulo":"Tarta fina"`)
}

func TestScenario_CreateThenFetchRoundTrip(t *testing.T) {
	router := newSQLiteRouter(t)

	rec := serve(t, router, http.MethodPost, "/usuarios/registrar", "", jsonBody(t, models.RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "pw123"}))
	require.Equal(t, http.StatusCreated, rec.Code)
	anaID := decodeMessage(t, rec).ID
	token := loginToken(t, router, "ana@x.com", "pw123")

	input := models.RecipeInput{
		Title:        "Tortilla de patatas",
		Description:  "La de la abuela, poco hecha",
		Ingredients:  "patatas, huevos, cebolla, aceite, sal",
		Instructions: "Freír las patatas, batir los huevos, cuajar a fuego lento",
	}
	rec = serve(t, router, http.MethodPost, "/recetas/crear", token, jsonBody(t, input))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := decodeMessage(t, rec).ID

	rec = serve(t, router, http.MethodGet, "/recetas/"+itoa(id), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Recipe
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.RecipeID(id), got.ID)
	assert.Equal(t, input.Title, got.Title)
	assert.Equal(t, input.Description, got.Description)
	assert.Equal(t, input.Ingredients, got.Ingredients)
	assert.Equal(t, input.Instructions, got.Instructions)
	assert.Equal(t, models.UserID(anaID), got.OwnerID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestScenario_RegisterPasswordTooLong(t *testing.T) {
	router := newSQLiteRouter(t)

	req := models.RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: strings.Repeat("a", 73)}
	rec := serve(t, router, http.MethodPost, "/usuarios/registrar", "", jsonBody(t, req))
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Equal(t, app.MsgPasswordTooLong, decodeError(t, rec))

	req.Password = strings.Repeat("a", 72)
	rec = serve(t, router, http.MethodPost, "/usuarios/registrar", "", jsonBody(t, req))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	loginToken(t, router, "ana@x.com", req.Password)
}

func TestScenario_LongNameAndTitleAccepted(t *testing.T) {
	router := newSQLiteRouter(t)

	rec := serve(t, router, http.MethodPost, "/usuarios/registrar", "", jsonBody(t, models.RegisterRequest{Name: strings.Repeat("A", 300), Email: "ana@x.com", Password: "pw123"}))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	token := loginToken(t, router, "ana@x.com", "pw123")

	rec = serve(t, router, http.MethodPost, "/recetas/crear", token, jsonBody(t, models.RecipeInput{Title: strings.Repeat("T", 400), Ingredients: "x", Instructions: "y"}))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestScenario_EmailIsCaseInsensitive(t *testing.T) {
	router := newSQLiteRouter(t)

	rec := serve(t, router, http.MethodPost, "/usuarios/registrar", "", jsonBody(t, models.RegisterRequest{Name: "Ana", Email: "Ana@X.com", Password: "pw123"}))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(t, router, http.MethodPost, "/usuarios/registrar", "", jsonBody(t, models.RegisterRequest{Name: "Otra Ana", Email: "ana@x.com", Password: "pw456"}))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgUserAlreadyExists, decodeError(t, rec))

	loginToken(t, router, "ANA@x.COM", "pw123")
}

func TestScenario_ConcurrentWrites(t *testing.T) {
	router := newSQLiteRouter(t)

	rec := serve(t, router, http.MethodPost, "/usuarios/registrar", "", jsonBody(t, models.RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "pw123"}))
	require.Equal(t, http.StatusCreated, rec.Code)
	token := loginToken(t, router, "ana@x.com", "pw123")

	const writers = 8
	body, err := json.Marshal(models.RecipeInput{Title: "Tarta", Ingredients: "harina", Instructions: "hornear"})
	require.NoError(t, err)

	statuses := make([]int, writers)
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			statuses[i] = serve(t, router, http.MethodPost, "/recetas/crear", token, bytes.NewReader(body)).Code
		}()
	}
	wg.Wait()

	for _, status := range statuses {
		assert.Equal(t, http.StatusCreated, status)
	}

	rec = serve(t, router, http.MethodGet, "/recetas/mis-recetas", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeRecipes(t, rec), writers)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
