// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/crypto"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/mock"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAuthSvc builds an authService over gomock collaborators.
func newTestAuthSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*authService,
	*mock.MockUserRepository,
	*mock.MockSessionStore,
	*mock.MockPasswordHasher,
) {
	t.Helper()
	mockUsers := mock.NewMockUserRepository(ctrl)
	mockSessions := mock.NewMockSessionStore(ctrl)
	mockHasher := mock.NewMockPasswordHasher(ctrl)

	sessions := newTestSessionManager(t, mockSessions, testAppConfig())
	svc := NewAuthService(mockUsers, sessions, mockHasher, logger.Nop()).(*authService)

	return svc, mockUsers, mockSessions, mockHasher
}

var storedUser = models.User{ID: "uid", Username: "test_user", HashedPassword: "$argon2id$stored"}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockUsers, mockSessions, mockHasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockUsers.EXPECT().FindUserByUsername(ctx, "test_user").Return(storedUser, nil),
		mockHasher.EXPECT().Verify(ctx, storedUser.HashedPassword, "password").Return(true, nil),
		mockSessions.EXPECT().CreateSession(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, s models.Session) error {
				assert.Equal(t, "uid", s.UserID)
				assert.True(t, s.Fresh)
				return nil
			},
		),
	)

	user, headers, err := svc.Login(ctx, models.Credentials{Username: "test_user", Password: "password"})
	require.NoError(t, err)

	assert.Equal(t, storedUser, user)
	require.Len(t, headers, 1)
	assert.Equal(t, "Set-Cookie", headers[0].Name)
	assert.True(t, strings.HasPrefix(headers[0].Value, "auth_session="))
}

func TestAuthService_Login_SameErrorForUnknownUserAndWrongPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, mockUsers, _, _ := newTestAuthSvc(t, ctrl)

		mockUsers.EXPECT().FindUserByUsername(ctx, "ghost").
			Return(models.User{}, fmt.Errorf("%w: ghost", store.ErrNoUserWasFound))

		_, headers, err := svc.Login(ctx, models.Credentials{Username: "ghost", Password: "password"})
		assert.ErrorIs(t, err, ErrIncorrectCredentials)
		assert.Equal(t, "Incorrect username or password", err.Error())
		assert.Empty(t, headers)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, mockUsers, _, mockHasher := newTestAuthSvc(t, ctrl)

		mockUsers.EXPECT().FindUserByUsername(ctx, "test_user").Return(storedUser, nil)
		mockHasher.EXPECT().Verify(ctx, storedUser.HashedPassword, "buzzword").Return(false, nil)

		_, headers, err := svc.Login(ctx, models.Credentials{Username: "test_user", Password: "buzzword"})
		assert.ErrorIs(t, err, ErrIncorrectCredentials)
		assert.Equal(t, "Incorrect username or password", err.Error())
		assert.Empty(t, headers)
	})
}

func TestAuthService_Login_Failures(t *testing.T) {
	ctx := context.Background()
	credentials := models.Credentials{Username: "test_user", Password: "password"}

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, mockUsers, _, _ := newTestAuthSvc(t, ctrl)

		mockUsers.EXPECT().FindUserByUsername(ctx, "test_user").Return(models.User{}, store.ErrExecutingQuery)

		_, _, err := svc.Login(ctx, credentials)
		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrExecutingQuery)
		assert.NotErrorIs(t, err, ErrIncorrectCredentials)
	})

	t.Run("malformed stored hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, mockUsers, _, mockHasher := newTestAuthSvc(t, ctrl)

		mockUsers.EXPECT().FindUserByUsername(ctx, "test_user").Return(storedUser, nil)
		mockHasher.EXPECT().Verify(ctx, storedUser.HashedPassword, "password").Return(false, crypto.ErrInvalidHash)

		_, _, err := svc.Login(ctx, credentials)
		assert.ErrorIs(t, err, crypto.ErrInvalidHash)
	})

	t.Run("session store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, mockUsers, mockSessions, mockHasher := newTestAuthSvc(t, ctrl)

		mockUsers.EXPECT().FindUserByUsername(ctx, "test_user").Return(storedUser, nil)
		mockHasher.EXPECT().Verify(ctx, storedUser.HashedPassword, "password").Return(true, nil)
		mockSessions.EXPECT().CreateSession(ctx, gomock.Any()).Return(errors.New("db down"))

		_, headers, err := svc.Login(ctx, credentials)
		assert.ErrorIs(t, err, ErrCreatingSession)
		assert.Empty(t, headers)
	})
}

// ── Signup ───────────────────────────────────────────────────────────────────

func TestAuthService_Signup_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockUsers, mockSessions, mockHasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockHasher.EXPECT().Hash(ctx, "password").Return("$argon2id$new", nil),
		mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.NotEmpty(t, u.ID)
				assert.Equal(t, "new_user", u.Username)
				assert.Equal(t, "$argon2id$new", u.HashedPassword)
				assert.False(t, u.CreatedAt.IsZero())
				return u, nil
			},
		),
		mockSessions.EXPECT().CreateSession(ctx, gomock.Any()).Return(nil),
	)

	user, headers, err := svc.Signup(ctx, models.Credentials{Username: "new_user", Password: "password"})
	require.NoError(t, err)

	assert.Equal(t, "new_user", user.Username)
	require.Len(t, headers, 1)
	assert.True(t, strings.HasPrefix(headers[0].Value, "auth_session="))
}

func TestAuthService_Signup_UsernameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	// no CreateSession expectation: a second session must not be created
	svc, mockUsers, _, mockHasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockHasher.EXPECT().Hash(ctx, "password").Return("$argon2id$new", nil)
	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).
		Return(models.User{}, fmt.Errorf("%w: test_user", store.ErrUsernameAlreadyExists))

	_, headers, err := svc.Signup(ctx, models.Credentials{Username: "test_user", Password: "password"})
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
	assert.Empty(t, headers)
}

func TestAuthService_Signup_HashError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, mockHasher := newTestAuthSvc(t, ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mockHasher.EXPECT().Hash(ctx, "password").Return("", context.Canceled)

	_, _, err := svc.Signup(ctx, models.Credentials{Username: "new_user", Password: "password"})
	assert.ErrorIs(t, err, context.Canceled)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("no session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, _, _ := newTestAuthSvc(t, ctrl)

		headers, err := svc.Logout(ctx, nil)
		assert.ErrorIs(t, err, ErrNoUserToLogOut)
		assert.Equal(t, "No user to log out", err.Error())
		assert.Empty(t, headers)
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, mockSessions, _ := newTestAuthSvc(t, ctrl)

		mockSessions.EXPECT().DeleteSession(ctx, "sid").Return(nil)

		headers, err := svc.Logout(ctx, &models.Session{ID: "sid", UserID: "uid"})
		require.NoError(t, err)
		require.Len(t, headers, 1)
		assert.True(t, strings.HasPrefix(headers[0].Value, "auth_session=;"))
		assert.Contains(t, headers[0].Value, "Max-Age=0")
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, mockSessions, _ := newTestAuthSvc(t, ctrl)

		mockSessions.EXPECT().DeleteSession(ctx, "sid").Return(store.ErrExecutingStatement)

		_, err := svc.Logout(ctx, &models.Session{ID: "sid"})
		assert.ErrorIs(t, err, store.ErrExecutingStatement)
	})
}

// ── end to end over the in-memory store ─────────────────────────────────────

func newMemoryServices(t *testing.T) *Services {
	t.Helper()
	memory := store.NewMemoryStorage()
	storages := &store.Storages{UserRepository: memory, SessionStore: memory}
	hasher := crypto.NewArgon2idHasher(crypto.Argon2Params{Memory: 64, Iterations: 1, Parallelism: 1}, 2)

	return NewServices(storages, hasher, config.StructuredConfig{App: testAppConfig()}, logger.Nop())
}

func TestServices_SignupThenLogin(t *testing.T) {
	ctx := context.Background()
	services := newMemoryServices(t)
	credentials := models.Credentials{Username: "test_user", Password: "password"}

	signedUp, _, err := services.AuthService.Signup(ctx, credentials)
	require.NoError(t, err)

	_, _, err = services.AuthService.Signup(ctx, credentials)
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)

	loggedIn, headers, err := services.AuthService.Login(ctx, credentials)
	require.NoError(t, err)
	assert.Equal(t, signedUp.ID, loggedIn.ID)
	require.Len(t, headers, 1)

	pair, _, _ := strings.Cut(headers[0].Value, ";")
	result, err := services.Authenticator.Authenticate(ctx, getRequest(models.Header{Name: "Cookie", Value: pair}))
	require.NoError(t, err)
	require.True(t, result.Authorized())
	assert.Equal(t, signedUp.ID, result.User.ID)

	_, err = services.AuthService.Logout(ctx, result.Session)
	require.NoError(t, err)

	result, err = services.Authenticator.Authenticate(ctx, getRequest(models.Header{Name: "Cookie", Value: pair}))
	require.NoError(t, err)
	assert.False(t, result.Authorized())

	_, _, err = services.AuthService.Login(ctx, models.Credentials{Username: "test_user", Password: "buzzword"})
	assert.ErrorIs(t, err, ErrIncorrectCredentials)
}
