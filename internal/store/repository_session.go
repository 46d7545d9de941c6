// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// sessionRepository is the SQL-backed implementation of [SessionStore].
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionStore] on top of the "sessions"
// table.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionStore {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	query, args, err := buildInsertSessionQuery(r.db.builder(), session)
	if err != nil {
		return err
	}

	if err = r.exec(ctx, "CreateSession", query, args); err != nil {
		return err
	}

	return nil
}

func (r *sessionRepository) GetSession(ctx context.Context, sessionID string) (models.Session, models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSessionQuery(r.db.builder(), sessionID)
	if err != nil {
		return models.Session{}, models.User{}, err
	}

	var (
		session   models.Session
		user      models.User
		expiresAt sql.NullTime
	)

	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(
		&session.ID, &session.UserID, &expiresAt, &session.Fresh,
		&user.ID, &user.Username, &user.HashedPassword, &user.CreatedAt,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Session{}, models.User{}, ErrSessionNotFound
	case err != nil:
		log.Err(err).Str("func", "*sessionRepository.GetSession").Msg("error scanning session")
		return models.Session{}, models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	session.ExpiresAt = timePtr(expiresAt)
	return session, user, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	query, args, err := buildDeleteSessionQuery(r.db.builder(), sessionID)
	if err != nil {
		return err
	}

	return r.exec(ctx, "DeleteSession", query, args)
}

func (r *sessionRepository) DeleteUserSessions(ctx context.Context, userID string) error {
	query, args, err := buildDeleteUserSessionsQuery(r.db.builder(), userID)
	if err != nil {
		return err
	}

	return r.exec(ctx, "DeleteUserSessions", query, args)
}

func (r *sessionRepository) TouchSession(ctx context.Context, sessionID string, expiresAt *time.Time) error {
	query, args, err := buildTouchSessionQuery(r.db.builder(), sessionID, expiresAt)
	if err != nil {
		return err
	}

	return r.exec(ctx, "TouchSession", query, args)
}

func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExpiredSessionsQuery(r.db.builder(), now)
	if err != nil {
		return 0, err
	}

	var result sql.Result
	err = r.db.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("error deleting expired sessions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}

func (r *sessionRepository) exec(ctx context.Context, op, query string, args []any) error {
	err := r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository."+op).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
