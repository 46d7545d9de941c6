// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts. Username uniqueness is enforced
// here: CreateUser returns [ErrUsernameAlreadyExists] on collision.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// SessionStore persists sessions keyed by session id and user id.
//
// Implementations guarantee read-your-write: a session passed to
// CreateSession is returned by an immediately following GetSession.
type SessionStore interface {
	// CreateSession stores a new session.
	CreateSession(ctx context.Context, session models.Session) error

	// GetSession returns the session together with its owning user, or
	// [ErrSessionNotFound] when the session or its user does not exist.
	GetSession(ctx context.Context, sessionID string) (models.Session, models.User, error)

	// DeleteSession removes a session. Deleting a missing session is not an error.
	DeleteSession(ctx context.Context, sessionID string) error

	// DeleteUserSessions removes every session of the user.
	DeleteUserSessions(ctx context.Context, userID string) error

	// TouchSession overwrites the expiry of a session and marks it as no
	// longer fresh. Touching a missing session is not an error.
	TouchSession(ctx context.Context, sessionID string, expiresAt *time.Time) error

	// DeleteExpiredSessions removes sessions that expired at or before now
	// and returns how many were removed.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}
