// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/crypto"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against the UserRepository with a PasswordHasher
// and issues sessions through a SessionManager.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessions creates sessions and their cookies.
	sessions SessionManager

	// hasher hashes new passwords and verifies submitted ones.
	hasher crypto.PasswordHasher

	// ids generates user identifiers.
	ids *utils.UUIDGenerator

	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, sessions SessionManager, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		sessions:       sessions,
		hasher:         hasher,
		ids:            utils.NewUUIDGenerator(),
		now:            time.Now,
		logger:         logger,
	}
}

// Login authenticates an existing user and opens a session.
//
// An unknown username and a wrong password both return
// ErrIncorrectCredentials. Any other failure is wrapped and returned.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, models.Headers, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("username", credentials.Username).Msg("login for unknown username")
		return models.User{}, nil, ErrIncorrectCredentials
	}
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.User{}, nil, fmt.Errorf("user search by username failed: %w", err)
	}

	valid, err := a.hasher.Verify(ctx, foundUser.HashedPassword, credentials.Password)
	if err != nil {
		log.Err(err).Str("id", foundUser.ID).Msg("password verification failed")
		return models.User{}, nil, fmt.Errorf("password verification failed: %w", err)
	}
	if !valid {
		log.Info().Str("id", foundUser.ID).Msg("wrong password")
		return models.User{}, nil, ErrIncorrectCredentials
	}

	headers, err := a.startSession(ctx, foundUser)
	if err != nil {
		return models.User{}, nil, err
	}

	log.Debug().Str("id", foundUser.ID).Msg("user successfully logged in")
	return foundUser, headers, nil
}

// Signup creates a new user account and opens its first session.
//
// A taken username returns an error wrapping store.ErrUsernameAlreadyExists;
// no session is created in that case.
func (a *authService) Signup(ctx context.Context, credentials models.Credentials) (models.User, models.Headers, error) {
	log := logger.FromContext(ctx)

	hashedPassword, err := a.hasher.Hash(ctx, credentials.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, nil, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:             a.ids.Generate(),
		Username:       credentials.Username,
		HashedPassword: hashedPassword,
		CreatedAt:      a.now().UTC(),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, nil, fmt.Errorf("user creation ended with error: %w", err)
	}

	headers, err := a.startSession(ctx, registeredUser)
	if err != nil {
		return models.User{}, nil, err
	}

	log.Debug().Str("id", registeredUser.ID).Msg("user signed up")
	return registeredUser, headers, nil
}

// Logout invalidates the session and returns the blank cookie.
// A nil session returns ErrNoUserToLogOut.
func (a *authService) Logout(ctx context.Context, session *models.Session) (models.Headers, error) {
	if session == nil {
		return nil, ErrNoUserToLogOut
	}

	if err := a.sessions.InvalidateSession(ctx, session.ID); err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", session.UserID).Msg("logout failed")
		return nil, err
	}

	return models.Headers{a.sessions.CreateBlankSessionCookie()}, nil
}

func (a *authService) startSession(ctx context.Context, user models.User) (models.Headers, error) {
	session, err := a.sessions.CreateSession(ctx, user.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", user.ID).Msg("session creation failed")
		return nil, err
	}

	cookie, err := a.sessions.CreateSessionCookie(session)
	if err != nil {
		return nil, err
	}

	return models.Headers{cookie}, nil
}
