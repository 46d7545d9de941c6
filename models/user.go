// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the opaque, stable and unique identifier of the user.
	ID string `json:"id"`

	// Username is the unique login name (3-31 chars of [a-z0-9_-]).
	Username string `json:"username"`

	// HashedPassword is the self-describing argon2id hash of the password.
	// It is never the plaintext and is never serialized to clients.
	HashedPassword string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
