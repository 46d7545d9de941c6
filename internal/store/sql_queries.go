// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-auth-keeper/models"
)

var (
	userColumns = []string{"id", "username", "hashed_password", "created_at"}

	sessionWithUserColumns = []string{
		"s.id", "s.user_id", "s.expires_at", "s.fresh",
		"u.id", "u.username", "u.hashed_password", "u.created_at",
	}
)

func toSQL(builder sq.Sqlizer) (string, []any, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return toSQL(b.Insert(models.User{}.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Username, user.HashedPassword, user.CreatedAt.UTC()))
}

// buildSelectUserQuery selects a single user whose column equals value.
func buildSelectUserQuery(b sq.StatementBuilderType, column, value string) (string, []any, error) {
	return toSQL(b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value}).
		Limit(1))
}

func buildInsertSessionQuery(b sq.StatementBuilderType, session models.Session) (string, []any, error) {
	return toSQL(b.Insert(models.Session{}.TableName()).
		Columns("id", "user_id", "expires_at", "fresh").
		Values(session.ID, session.UserID, nullTime(session.ExpiresAt), session.Fresh))
}

// buildSelectSessionQuery joins the session with its owner so that sessions
// of missing users are never returned.
func buildSelectSessionQuery(b sq.StatementBuilderType, sessionID string) (string, []any, error) {
	return toSQL(b.Select(sessionWithUserColumns...).
		From("sessions s").
		Join("users u ON u.id = s.user_id").
		Where(sq.Eq{"s.id": sessionID}))
}

func buildDeleteSessionQuery(b sq.StatementBuilderType, sessionID string) (string, []any, error) {
	return toSQL(b.Delete(models.Session{}.TableName()).Where(sq.Eq{"id": sessionID}))
}

func buildDeleteUserSessionsQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return toSQL(b.Delete(models.Session{}.TableName()).Where(sq.Eq{"user_id": userID}))
}

func buildTouchSessionQuery(b sq.StatementBuilderType, sessionID string, expiresAt *time.Time) (string, []any, error) {
	return toSQL(b.Update(models.Session{}.TableName()).
		Set("expires_at", nullTime(expiresAt)).
		Set("fresh", false).
		Where(sq.Eq{"id": sessionID}))
}

func buildDeleteExpiredSessionsQuery(b sq.StatementBuilderType, now time.Time) (string, []any, error) {
	return toSQL(b.Delete(models.Session{}.TableName()).
		Where(sq.NotEq{"expires_at": nil}).
		Where(sq.LtOrEq{"expires_at": now.UTC()}))
}
