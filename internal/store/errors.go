// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user with the same email is
	// already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when no user matches the lookup.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrRecipeNotFound is returned when no recipe has the requested id.
	ErrRecipeNotFound = errors.New("recipe was not found")

	// ErrNotRecipeOwner is returned when a mutation targets an existing recipe
	// that belongs to another user.
	ErrNotRecipeOwner = errors.New("requester is not the recipe owner")

	// ErrOwnerNotFound is returned when a recipe references a user id that
	// does not exist (foreign key violation).
	ErrOwnerNotFound = errors.New("recipe owner does not exist")
)

// Low-level database operation errors.
var (
	// ErrUnsupportedDriver is returned when the configured driver is not one
	// of postgres, mysql or sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
