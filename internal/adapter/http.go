// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// The base URL comes from cfg.HTTPAddress ("http://" is assumed when no
// scheme is given) and cfg.Token, if set, is used for authenticated calls.
//
// Returns an error if cfg.HTTPAddress is empty or not a valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.UserID, error) {
	var created models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&created).
		Post("/usuarios/registrar")
	if err != nil {
		return 0, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return models.UserID(created.ID), nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	var login models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&login).
		Post("/usuarios/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if login.AccessToken == "" {
		return "", errors.New("login response has no access token")
	}

	h.SetToken(login.AccessToken)
	return login.AccessToken, nil
}

func (h *httpServerAdapter) CreateRecipe(ctx context.Context, input models.RecipeInput) (models.RecipeID, error) {
	var created models.MessageResponse

	resp, err := h.authedRequest(ctx).
		SetBody(input).
		SetResult(&created).
		Post("/recetas/crear")
	if err != nil {
		return 0, fmt.Errorf("create recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return models.RecipeID(created.ID), nil
}

func (h *httpServerAdapter) GetRecipe(ctx context.Context, id models.RecipeID) (models.Recipe, error) {
	var recipe models.Recipe

	resp, err := h.authedRequest(ctx).
		SetResult(&recipe).
		Get("/recetas/" + formatID(int64(id)))
	if err != nil {
		return models.Recipe{}, fmt.Errorf("get recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}

	return recipe, nil
}

func (h *httpServerAdapter) ListRecipes(ctx context.Context) ([]models.RecipeSummary, error) {
	return h.listRecipes(ctx, "/recetas/")
}

func (h *httpServerAdapter) ListMyRecipes(ctx context.Context) ([]models.RecipeSummary, error) {
	recipes, err := h.listRecipes(ctx, "/recetas/mis-recetas")
	if errors.Is(err, ErrNotFound) {
		return []models.RecipeSummary{}, nil
	}
	return recipes, err
}

func (h *httpServerAdapter) listRecipes(ctx context.Context, path string) ([]models.RecipeSummary, error) {
	var list models.RecipesResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&list).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("list recipes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if list.Recipes == nil {
		list.Recipes = []models.RecipeSummary{}
	}
	return list.Recipes, nil
}

func (h *httpServerAdapter) UpdateRecipe(ctx context.Context, id models.RecipeID, input models.RecipeInput) error {
	resp, err := h.authedRequest(ctx).
		SetBody(input).
		Put("/recetas/modificar/" + formatID(int64(id)))
	if err != nil {
		return fmt.Errorf("update recipe request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteRecipe(ctx context.Context, id models.RecipeID) error {
	resp, err := h.authedRequest(ctx).
		Delete("/recetas/eliminar/" + formatID(int64(id)))
	if err != nil {
		return fmt.Errorf("delete recipe request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	} else {
		h.logger.Warn().Str("func", "*httpServerAdapter.authedRequest").Msg("no access token set")
	}
	return req
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
