// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// SessionManager drives a session through its life:
// nonexistent -> active(fresh) -> active(stale) -> invalidated.
type SessionManager interface {
	// CreateSession persists a new fresh session for the user.
	CreateSession(ctx context.Context, userID string) (models.Session, error)

	// CreateSessionCookie serializes the session into a Set-Cookie header.
	CreateSessionCookie(session models.Session) (models.Header, error)

	// CreateBlankSessionCookie returns a Set-Cookie header that clears the
	// session cookie.
	CreateBlankSessionCookie() models.Header

	// ReadSessionCookie extracts the session id from a raw Cookie header.
	// It never fails: a missing or tampered cookie yields "".
	ReadSessionCookie(rawCookieHeader string) string

	// ValidateSession resolves a session id to its session and user.
	// Unknown and expired sessions yield (nil, nil, nil). A returned session
	// with Fresh set means a new cookie has to be sent.
	ValidateSession(ctx context.Context, sessionID string) (*models.Session, *models.User, error)

	// InvalidateSession deletes the session. It is idempotent.
	InvalidateSession(ctx context.Context, sessionID string) error

	// InvalidateUserSessions deletes every session of the user.
	InvalidateUserSessions(ctx context.Context, userID string) error
}

// Authenticator classifies an inbound request as authorized, unauthorized
// or forbidden.
type Authenticator interface {
	Authenticate(ctx context.Context, req models.AuthRequest) (AuthResult, error)
}

// AuthService implements the login, signup and logout actions. The returned
// headers are Set-Cookie pairs the transport must attach to its response.
type AuthService interface {
	Login(ctx context.Context, credentials models.Credentials) (models.User, models.Headers, error)
	Signup(ctx context.Context, credentials models.Credentials) (models.User, models.Headers, error)
	Logout(ctx context.Context, session *models.Session) (models.Headers, error)
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}
