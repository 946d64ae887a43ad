// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-recipe-keeper/internal/app"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
)

// notFound is registered via [chi.Mux.NotFound] so unknown paths answer with
// the same {"error": msg} body as every other failure.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}

// methodNotAllowed is registered via [chi.Mux.MethodNotAllowed]. chi calls it
// when the path matches a route but the method is not handled by it.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
}
