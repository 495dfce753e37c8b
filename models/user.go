// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// User is a record of the remote "trans_users" collection.
//
// The same JSON shape is written to and read from the remote store, so every
// field carries its wire name. Password always holds a one-way hash, never the
// plaintext supplied by the caller.
type User struct {
	// ID is assigned once, on creation, and never changes afterwards.
	ID uuid.UUID `json:"id"`

	// Username is the display name of the user. Never empty.
	Username string `json:"username"`

	// Email is the contact address; used as the sign-in identifier.
	Email string `json:"email"`

	// Password is the stored hash of the user's password.
	Password string `json:"password"`

	// CreatedAt is stamped on creation (naive UTC).
	CreatedAt Timestamp `json:"created_at"`

	// UpdatedAt is re-stamped on every update (naive UTC).
	// It is never earlier than CreatedAt.
	UpdatedAt Timestamp `json:"updated_at"`
}

// Public returns the outward-facing view of the user without the password hash.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// PublicUser is the representation of [User] returned to API clients.
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`
}

// PublicUsers converts a slice of users into their public views.
func PublicUsers(users []User) []PublicUser {
	result := make([]PublicUser, 0, len(users))
	for _, u := range users {
		result = append(result, u.Public())
	}
	return result
}

// NewUser is the input for creating or updating a user.
//
// Password is plaintext here; it is hashed before anything leaves the process
// and is never persisted as-is.
type NewUser struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,contains=@"`
	Password string `json:"password" validate:"min=8"`
}

// UserPatch is the partial document sent to the remote store on update.
// ID and CreatedAt are intentionally absent: they are immutable.
type UserPatch struct {
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	UpdatedAt Timestamp `json:"updated_at"`
}
