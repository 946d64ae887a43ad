// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, JSON responses, password
// hashing, HTTP client initialization, JWT token generation and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user identifier in
// the context. Values stored under it must be of type models.UserID.
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying the authenticated identity.
func WithUserID(ctx context.Context, userID models.UserID) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext retrieves the authenticated user identifier from the
// context.
//
//   - ok == true : value is found and has the models.UserID type
//   - ok == false: value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (models.UserID, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(models.UserID)
	return userID, ok
}
