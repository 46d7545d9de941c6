// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the server-held record proving that a user is authenticated.
// It is referenced by an opaque id carried in the session cookie.
type Session struct {
	// ID is the opaque, unguessable session identifier.
	ID string `json:"id"`

	// UserID references the owning [User].
	UserID string `json:"user_id"`

	// ExpiresAt is the absolute expiry of the session.
	// A nil value means the session never expires until it is invalidated.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	// Fresh reports whether the session cookie was (re)issued for the
	// current request. It is true right after creation or renewal and false
	// once the session has been observed and accepted.
	Fresh bool `json:"fresh"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// ExpiredAt reports whether the session is expired at the given instant.
// Sessions without an expiry never expire.
func (s Session) ExpiredAt(now time.Time) bool {
	return s.ExpiresAt != nil && !now.Before(*s.ExpiresAt)
}
