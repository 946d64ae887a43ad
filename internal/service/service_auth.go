// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration and credential verification using a
// UserRepository for persistence, bcrypt for password hashing and a
// TokenService for issuing tokens after a successful login.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenService issues the token returned by Login.
	tokenService TokenService

	// passwordHasher produces and checks salted bcrypt hashes.
	passwordHasher *utils.PasswordHasher

	// validator checks registration and login payloads.
	validator validators.Validator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and TokenService. cfg.BcryptCost selects the hashing work factor.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, tokenService TokenService, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenService:   tokenService,
		passwordHasher: utils.NewPasswordHasher(cfg.BcryptCost),
		validator:      validators.NewUserValidator(),
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// Returns the id assigned to the account or:
//   - ErrInvalidDataProvided if name, email or password is empty, or if the
//     email or password is longer than can be stored.
//   - A wrapped store.ErrEmailAlreadyExists if the email is taken.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.UserID, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("invalid registration data provided")
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := a.passwordHasher.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return 0, err
	}

	userID, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return 0, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", int64(userID)).Msg("user registered")
	return userID, nil
}

// Login authenticates an existing user and issues a token for them.
//
// Returns the issued token or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrWrongCredentials if no user has the email or the password does not
//     match the stored hash.
//   - A wrapped error for storage or token failures.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Warn().Err(err).Msg("invalid login data provided")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(req.Email))
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("email", req.Email).Msg("login attempt for unknown email")
		return models.Token{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	err = a.passwordHasher.ComparePassword(foundUser.PasswordHash, req.Password)
	if errors.Is(err, utils.ErrPasswordMismatch) {
		log.Info().Int64("user_id", int64(foundUser.UserID)).Msg("wrong password")
		return models.Token{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Int64("user_id", int64(foundUser.UserID)).Msg("password comparison failed")
		return models.Token{}, err
	}

	return a.tokenService.Issue(ctx, foundUser.UserID)
}

// normalizeEmail trims and lower-cases an address so uniqueness and lookup
// behave the same on every storage dialect.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
