// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// tokenService signs HS256 JWTs whose subject is the decimal user id.
type tokenService struct {
	// signKey is the HMAC secret used to sign and verify tokens.
	signKey string

	// issuer is the "iss" claim embedded in every token and required on
	// verification.
	issuer string

	// duration is how long a newly issued token stays valid.
	duration time.Duration

	// now is the clock used for "iat", "exp" and expiry checks.
	now func() time.Time

	logger *logger.Logger
}

// TokenServiceOption customises a TokenService built by NewTokenService.
type TokenServiceOption func(*tokenService)

// WithClock replaces the wall clock used to stamp and check tokens.
func WithClock(now func() time.Time) TokenServiceOption {
	return func(s *tokenService) {
		s.now = now
	}
}

// NewTokenService constructs a TokenService from the token settings in cfg.
func NewTokenService(cfg config.App, logger *logger.Logger, opts ...TokenServiceOption) TokenService {
	s := &tokenService{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
		now:      time.Now,
		logger:   logger,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Issue signs a token for userID valid for the configured duration.
func (s *tokenService) Issue(ctx context.Context, userID models.UserID) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.issuer, userID, s.now(), s.duration, s.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", int64(userID)).Msg("token signing failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify checks signature, issuer and expiry of signed and returns its
// subject as a UserID.
func (s *tokenService) Verify(ctx context.Context, signed string) (models.UserID, error) {
	token, err := utils.ValidateAndParseJWTToken(signed, s.signKey, s.issuer, s.now)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenIsExpired
		}
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return 0, fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
	}

	return token.UserID, nil
}
