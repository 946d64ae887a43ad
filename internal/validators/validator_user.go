// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

// Field names accepted by [UserValidator].
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"

	// FieldEmailLength and FieldPasswordLength bound what registration may
	// store. Login skips them so an oversized credential is simply wrong.
	FieldEmailLength    = "email_length"
	FieldPasswordLength = "password_length"
)

const (
	// MaxEmailBytes is the longest address a mail path can carry (RFC 5321).
	MaxEmailBytes = 254

	// MaxPasswordBytes is the most input bcrypt accepts.
	MaxPasswordBytes = 72
)

var registerFields = []string{FieldName, FieldEmail, FieldPassword, FieldEmailLength, FieldPasswordLength}

// UserValidator implements [Validator] for registration and login requests.
type UserValidator struct{}

// NewUserValidator constructs a [UserValidator].
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate checks a models.RegisterRequest (name, email, password and their
// length limits by default) or a models.LoginRequest (email, password).
func (v *UserValidator) Validate(ctx context.Context, i any, fields ...string) error {
	switch value := i.(type) {
	case models.RegisterRequest:
		return v.validate(value, defaultFields(fields, registerFields...))
	case *models.RegisterRequest:
		return v.validate(*value, defaultFields(fields, registerFields...))

	case models.LoginRequest:
		return v.validate(models.RegisterRequest{Email: value.Email, Password: value.Password}, defaultFields(fields, FieldEmail, FieldPassword))
	case *models.LoginRequest:
		return v.validate(models.RegisterRequest{Email: value.Email, Password: value.Password}, defaultFields(fields, FieldEmail, FieldPassword))

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validate(req models.RegisterRequest, fields []string) error {
	for _, f := range fields {
		switch f {
		case FieldName:
			if isBlank(req.Name) {
				return ErrEmptyName
			}
		case FieldEmail:
			if isBlank(req.Email) {
				return ErrEmptyEmail
			}
		case FieldPassword:
			// passwords are taken verbatim; only emptiness is rejected
			if req.Password == "" {
				return ErrEmptyPassword
			}
		case FieldEmailLength:
			if len(strings.TrimSpace(req.Email)) > MaxEmailBytes {
				return ErrEmailTooLong
			}
		case FieldPasswordLength:
			if len(req.Password) > MaxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
