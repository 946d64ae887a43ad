// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-recipe-keeper/internal/app"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

var registerMessages = map[error]string{
	validators.ErrEmailTooLong:    app.MsgEmailTooLong,
	validators.ErrPasswordTooLong: app.MsgPasswordTooLong,
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeJSON(w, r, "*Handler.register", &req) {
		return
	}

	userID, err := h.services.AuthService.RegisterUser(r.Context(), req)
	if err != nil {
		respondError(w, r, "*Handler.register", err, registerMessages)
		return
	}

	logger.FromRequest(r).Debug().Int64("user_id", int64(userID)).Msg("user successfully registered")
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgUserCreated, ID: int64(userID)}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeJSON(w, r, "*Handler.login", &req) {
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		respondError(w, r, "*Handler.login", err, nil)
		return
	}

	logger.FromRequest(r).Debug().Int64("user_id", int64(token.UserID)).Msg("user successfully logged in")
	utils.WriteJSON(w, models.LoginResponse{AccessToken: token.SignedString}, http.StatusOK)
}
