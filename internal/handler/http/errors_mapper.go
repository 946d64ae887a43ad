// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-recipe-keeper/internal/app"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrWrongCredentials:    http.StatusUnauthorized,
	service.ErrTokenIsExpired:      http.StatusUnauthorized,
	service.ErrTokenIsInvalid:      http.StatusUnauthorized,
	service.ErrNoRecipesYet:        http.StatusNotFound,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrNoUserIDInContext:          http.StatusUnauthorized,
	ErrInvalidRecipeID:            http.StatusNotFound,

	// duplicate email is reported as a bad request, not a conflict
	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrRecipeNotFound:     http.StatusNotFound,
	store.ErrNotRecipeOwner:     http.StatusForbidden,
	store.ErrOwnerNotFound:      http.StatusUnauthorized,
}

var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided: app.MsgMissingData,
	service.ErrWrongCredentials:    app.MsgWrongCredentials,
	service.ErrTokenIsExpired:      app.MsgTokenExpired,
	service.ErrTokenIsInvalid:      app.MsgTokenInvalid,
	service.ErrNoRecipesYet:        app.MsgNoRecipesYet,

	ErrEmptyAuthorizationHeader:   app.MsgMissingToken,
	ErrInvalidAuthorizationHeader: app.MsgTokenInvalid,
	ErrNoUserIDInContext:          app.MsgTokenInvalid,
	ErrInvalidRecipeID:            app.MsgRecipeNotFound,

	store.ErrEmailAlreadyExists: app.MsgUserAlreadyExists,
	store.ErrNoUserWasFound:     app.MsgWrongCredentials,
	store.ErrRecipeNotFound:     app.MsgRecipeNotFound,
	store.ErrNotRecipeOwner:     app.MsgNoPermissionToModify,
	store.ErrOwnerNotFound:      app.MsgUnknownTokenUser,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError picks the user-facing message for err. overrides take
// precedence over the package defaults so a handler can word an error for
// its own operation. Unmapped errors get the generic 500 message.
func messageFromError(err error, overrides map[error]string) string {
	for target, msg := range overrides {
		if errors.Is(err, target) {
			return msg
		}
	}
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}

// respondError logs err and writes the mapped status with an {"error": msg}
// body. Internal details never reach the client.
func respondError(w http.ResponseWriter, r *http.Request, funcName string, err error, overrides map[error]string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Msg("unexpected error occurred")
	} else {
		log.Info().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, messageFromError(err, overrides), status)
}
