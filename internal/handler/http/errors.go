// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not hold a "Bearer <token>" value.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoUserIDInContext is returned when a protected handler runs without
	// an identity stored by the auth middleware.
	ErrNoUserIDInContext = errors.New("no user id in request context")

	// ErrInvalidRecipeID is returned when the {id} path segment does not fit
	// into a recipe id.
	ErrInvalidRecipeID = errors.New("invalid recipe id in path")
)
