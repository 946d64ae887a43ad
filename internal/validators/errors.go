// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle        = errors.New("title is required")
	ErrEmptyIngredients  = errors.New("ingredients are required")
	ErrEmptyInstructions = errors.New("instructions are required")
	ErrInvalidOwnerID    = errors.New("invalid owner ID")

	ErrEmptyName       = errors.New("name is required")
	ErrEmptyEmail      = errors.New("email is required")
	ErrEmptyPassword   = errors.New("password is required")
	ErrEmailTooLong    = errors.New("email is too long")
	ErrPasswordTooLong = errors.New("password is too long")
)
