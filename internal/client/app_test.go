// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-recipe-keeper/internal/adapter"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/mock"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

func newTestApp(t *testing.T, opts ...AppOption) (*App, *mock.MockServerAdapter, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mock.NewMockServerAdapter(ctrl)
	out := new(bytes.Buffer)
	return NewApp(m, out, logger.Nop(), opts...), m, out
}

func TestRun_NoCommand(t *testing.T) {
	app, _, out := newTestApp(t)

	err := app.Run(context.Background(), nil)

	assert.ErrorIs(t, err, ErrNoCommand)
	assert.Contains(t, out.String(), "usage: recipe-client")
}

func TestRun_UnknownCommand(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"cook"})

	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestRegister(t *testing.T) {
	app, m, out := newTestApp(t)
	m.EXPECT().Register(gomock.Any(), models.RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "pw123"}).
		Return(models.UserID(1), nil)

	err := app.Run(context.Background(), []string{"register", "-name", "Ana", "-email", "ana@x.com", "-password", "pw123"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "id 1")
}

func TestRegister_MissingFlags(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"register", "-name", "Ana"})

	require.ErrorIs(t, err, ErrMissingFlag)
	assert.Contains(t, err.Error(), "-email")
	assert.Contains(t, err.Error(), "-password")
}

func TestLogin_CopiesToken(t *testing.T) {
	var copied string
	app, m, out := newTestApp(t, WithClipboard(func(s string) error {
		copied = s
		return nil
	}))
	m.EXPECT().Login(gomock.Any(), models.LoginRequest{Email: "ana@x.com", Password: "pw123"}).Return("signed.jwt", nil)

	err := app.Run(context.Background(), []string{"login", "-email", "ana@x.com", "-password", "pw123", "-copy"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt", copied)
	assert.Contains(t, out.String(), "signed.jwt")
}

func TestLogin_ClipboardFailure(t *testing.T) {
	app, m, _ := newTestApp(t, WithClipboard(func(string) error { return errors.New("no clipboard") }))
	m.EXPECT().Login(gomock.Any(), gomock.Any()).Return("signed.jwt", nil)

	err := app.Run(context.Background(), []string{"login", "-email", "a", "-password", "b", "-copy"})

	assert.ErrorContains(t, err, "no clipboard")
}

func TestLogin_WrongCredentials(t *testing.T) {
	app, m, _ := newTestApp(t)
	m.EXPECT().Login(gomock.Any(), gomock.Any()).Return("", adapter.ErrUnauthorized)

	err := app.Run(context.Background(), []string{"login", "-email", "a", "-password", "b"})

	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestCreate(t *testing.T) {
	app, m, out := newTestApp(t)
	m.EXPECT().CreateRecipe(gomock.Any(), models.RecipeInput{
		Title: "Tarta", Ingredients: "harina,huevo", Instructions: "mezclar y hornear",
	}).Return(models.RecipeID(7), nil)

	err := app.Run(context.Background(), []string{"create", "-title", "Tarta", "-ingredients", "harina,huevo", "-instructions", "mezclar y hornear"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "id 7")
}

func TestList_ShowsAuthor(t *testing.T) {
	app, m, out := newTestApp(t)
	m.EXPECT().ListRecipes(gomock.Any()).Return([]models.RecipeSummary{
		{ID: 1, Title: "Tarta", Description: "de manzana", Author: "Ana"},
	}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"list"}))

	assert.Contains(t, out.String(), "Autor")
	assert.Contains(t, out.String(), "Ana")
	assert.Contains(t, out.String(), "Tarta")
}

func TestMine(t *testing.T) {
	t.Run("table without author", func(t *testing.T) {
		app, m, out := newTestApp(t)
		m.EXPECT().ListMyRecipes(gomock.Any()).Return([]models.RecipeSummary{{ID: 1, Title: "Tarta"}}, nil)

		require.NoError(t, app.Run(context.Background(), []string{"mine"}))

		assert.Contains(t, out.String(), "Tarta")
		assert.NotContains(t, out.String(), "Autor")
	})

	t.Run("empty", func(t *testing.T) {
		app, m, out := newTestApp(t)
		m.EXPECT().ListMyRecipes(gomock.Any()).Return([]models.RecipeSummary{}, nil)

		require.NoError(t, app.Run(context.Background(), []string{"mine"}))

		assert.Contains(t, out.String(), "No tienes recetas")
	})
}

func TestGet(t *testing.T) {
	app, m, out := newTestApp(t)
	m.EXPECT().GetRecipe(gomock.Any(), models.RecipeID(4)).Return(models.Recipe{
		ID: 4, Title: "Tarta", Ingredients: "harina", Instructions: "hornear", OwnerID: 1,
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"get", "-id", "4"}))

	assert.Contains(t, out.String(), "Tarta")
	assert.Contains(t, out.String(), "hornear")
	assert.Contains(t, out.String(), "2026-03-01 10:00")
}

func TestUpdate_Forbidden(t *testing.T) {
	app, m, _ := newTestApp(t)
	m.EXPECT().UpdateRecipe(gomock.Any(), models.RecipeID(4), models.RecipeInput{Title: "x", Ingredients: "y", Instructions: "z"}).
		Return(adapter.ErrForbidden)

	err := app.Run(context.Background(), []string{"update", "-id", "4", "-title", "x", "-ingredients", "y", "-instructions", "z"})

	assert.ErrorIs(t, err, adapter.ErrForbidden)
}

func TestDelete(t *testing.T) {
	app, m, out := newTestApp(t)
	m.EXPECT().DeleteRecipe(gomock.Any(), models.RecipeID(4)).Return(nil)

	require.NoError(t, app.Run(context.Background(), []string{"delete", "-id", "4"}))

	assert.Contains(t, out.String(), "Receta 4 eliminada")
}

func TestDelete_BadID(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"delete", "-id", "abc"})

	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	app, m, out := newTestApp(t)
	m.EXPECT().ServerVersion(gomock.Any()).Return("v1.0.0", nil)

	require.NoError(t, app.Run(context.Background(), []string{"version"}))

	assert.Equal(t, "v1.0.0\n", out.String())
}
