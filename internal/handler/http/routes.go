// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router with every route of the API.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Get("/version", h.getServerVersion)
	router.Route("/usuarios", func(r chi.Router) {
		r.Post("/registrar", h.register)
		r.Post("/login", h.login)
	})

	// routes with authorization
	router.Route("/recetas", func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/crear", h.createRecipe)
		r.Get("/", h.listRecipes)
		r.Get("/mis-recetas", h.listMyRecipes)
		r.Get("/{id:[0-9]+}", h.getRecipe)
		r.Put("/modificar/{id:[0-9]+}", h.updateRecipe)
		r.Delete("/eliminar/{id:[0-9]+}", h.deleteRecipe)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	return router
}
