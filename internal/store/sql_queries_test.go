// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildInsertUserQuery(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.FixedZone("X", 3600))
	user := models.User{ID: "id", Username: "john", HashedPassword: "hash", CreatedAt: created}

	query, args, err := buildInsertUserQuery(dollar, user)
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO users (id,username,hashed_password,created_at) VALUES ($1,$2,$3,$4)", query)
	require.Len(t, args, 4)
	assert.Equal(t, created.UTC(), args[3])
}

func Test_buildSelectUserQuery_Placeholders(t *testing.T) {
	tests := []struct {
		name    string
		builder sq.StatementBuilderType
		want    string
	}{
		{name: "postgres", builder: dollar, want: "SELECT id, username, hashed_password, created_at FROM users WHERE username = $1 LIMIT 1"},
		{name: "sqlite", builder: question, want: "SELECT id, username, hashed_password, created_at FROM users WHERE username = ? LIMIT 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectUserQuery(tt.builder, "username", "john")
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{"john"}, args)
		})
	}
}

func Test_buildInsertSessionQuery(t *testing.T) {
	expires := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := buildInsertSessionQuery(question, models.Session{ID: "sid", UserID: "uid", ExpiresAt: &expires, Fresh: true})
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO sessions (id,user_id,expires_at,fresh) VALUES (?,?,?,?)", query)
	assert.Equal(t, []any{"sid", "uid", sql.NullTime{Time: expires, Valid: true}, true}, args)
}

func Test_buildSelectSessionQuery(t *testing.T) {
	query, args, err := buildSelectSessionQuery(dollar, "sid")
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT s.id, s.user_id, s.expires_at, s.fresh, u.id, u.username, u.hashed_password, u.created_at "+
			"FROM sessions s JOIN users u ON u.id = s.user_id WHERE s.id = $1",
		query)
	assert.Equal(t, []any{"sid"}, args)
}

func Test_buildTouchSessionQuery_NoExpiry(t *testing.T) {
	query, args, err := buildTouchSessionQuery(dollar, "sid", nil)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE sessions SET expires_at = $1, fresh = $2 WHERE id = $3", query)
	assert.Equal(t, []any{sql.NullTime{}, false, "sid"}, args)
}

func Test_buildDeleteQueries(t *testing.T) {
	query, args, err := buildDeleteSessionQuery(dollar, "sid")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM sessions WHERE id = $1", query)
	assert.Equal(t, []any{"sid"}, args)

	query, args, err = buildDeleteUserSessionsQuery(dollar, "uid")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM sessions WHERE user_id = $1", query)
	assert.Equal(t, []any{"uid"}, args)

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	query, args, err = buildDeleteExpiredSessionsQuery(dollar, now)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM sessions WHERE expires_at IS NOT NULL AND expires_at <= $1", query)
	assert.Equal(t, []any{now}, args)
}
