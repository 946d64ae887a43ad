// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/mock"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type testServices struct {
	auth    *mock.MockAuthService
	token   *mock.MockTokenService
	recipes *mock.MockRecipeService
	appInfo *mock.MockAppInfoService
}

// newMockedHandler builds a Handler over gomock services.
func newMockedHandler(t *testing.T) (*Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testServices{
		auth:    mock.NewMockAuthService(ctrl),
		token:   mock.NewMockTokenService(ctrl),
		recipes: mock.NewMockRecipeService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	svcs := &service.Services{
		AuthService:    m.auth,
		TokenService:   m.token,
		RecipeService:  m.recipes,
		AppInfoService: m.appInfo,
	}

	return NewHandler(svcs, config.Server{}, logger.Nop()), m
}

func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

// serve sends a request through the full router.
func serve(t *testing.T, router http.Handler, method, target, token string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp.Error
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) models.MessageResponse {
	t.Helper()
	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}

func decodeRecipes(t *testing.T, rec *httptest.ResponseRecorder) []models.RecipeSummary {
	t.Helper()
	var resp models.RecipesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp.Recipes
}
