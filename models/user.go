// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"time"
)

// UserID is the numeric identity of a registered user. It is the only
// representation of identity used past the token boundary: the JWT subject is
// converted into a UserID exactly once, so ownership checks always compare
// numbers with numbers.
type UserID int64

// String returns the base-10 form used as the JWT "sub" claim.
func (id UserID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseUserID converts a base-10 string (typically a JWT subject) into a UserID.
func ParseUserID(s string) (UserID, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return UserID(id), nil
}

// User represents a registered account.
// PasswordHash is a bcrypt hash and is never exposed via JSON.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID UserID `json:"-"`

	// Name is the display name of the user, shown as recipe author.
	Name string `json:"nombre"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// PasswordHash stores the salted one-way hash of the user's password.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// RegisterRequest is the body of POST /usuarios/registrar.
type RegisterRequest struct {
	Name     string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /usuarios/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
