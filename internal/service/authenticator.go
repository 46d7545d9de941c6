// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/metrics"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// AuthStatus is the outcome of authenticating a request.
type AuthStatus int

const (
	AuthUnauthorized AuthStatus = iota
	AuthAuthorized
	AuthForbidden
)

func (s AuthStatus) String() string {
	switch s {
	case AuthAuthorized:
		return metrics.OutcomeAuthorized
	case AuthForbidden:
		return metrics.OutcomeForbidden
	default:
		return metrics.OutcomeUnauthorized
	}
}

// AuthResult is returned by [Authenticator.Authenticate]. User and Session
// are only set when Status is AuthAuthorized.
type AuthResult struct {
	Status  AuthStatus
	User    *models.User
	Session *models.Session

	// PendingCookies holds the Set-Cookie header of a renewed session.
	// The caller attaches it to its response.
	PendingCookies models.Headers
}

// Authorized reports whether the request carries a valid session.
func (r AuthResult) Authorized() bool {
	return r.Status == AuthAuthorized
}

type authenticator struct {
	sessions SessionManager
	origins  OriginPolicy
	logger   *logger.Logger
}

// NewAuthenticator constructs an Authenticator. The origin check runs
// before any session lookup.
func NewAuthenticator(sessions SessionManager, origins OriginPolicy, logger *logger.Logger) Authenticator {
	return &authenticator{
		sessions: sessions,
		origins:  origins,
		logger:   logger,
	}
}

func (a *authenticator) Authenticate(ctx context.Context, req models.AuthRequest) (AuthResult, error) {
	log := logger.FromContext(ctx)

	if !a.origins.Allow(req) {
		log.Warn().
			Str("origin", req.Headers.Get("Origin")).
			Str("host", req.Headers.Get("Host")).
			Msg("request origin rejected")
		return a.result(AuthResult{Status: AuthForbidden}), nil
	}

	sessionID := a.sessions.ReadSessionCookie(strings.Join(req.Headers.Values("Cookie"), "; "))
	if sessionID == "" {
		return a.result(AuthResult{Status: AuthUnauthorized}), nil
	}

	session, user, err := a.sessions.ValidateSession(ctx, sessionID)
	if err != nil {
		metrics.Authentications.WithLabelValues(metrics.OutcomeError).Inc()
		return AuthResult{}, fmt.Errorf("error validating session: %w", err)
	}
	if session == nil {
		return a.result(AuthResult{Status: AuthUnauthorized}), nil
	}

	result := AuthResult{
		Status:  AuthAuthorized,
		User:    user,
		Session: session,
	}

	if session.Fresh {
		cookie, err := a.sessions.CreateSessionCookie(*session)
		if err != nil {
			metrics.Authentications.WithLabelValues(metrics.OutcomeError).Inc()
			return AuthResult{}, err
		}
		result.PendingCookies = models.Headers{cookie}
	}

	return a.result(result), nil
}

func (a *authenticator) result(r AuthResult) AuthResult {
	metrics.Authentications.WithLabelValues(r.Status.String()).Inc()
	return r
}
