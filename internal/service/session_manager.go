// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/metrics"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/gorilla/securecookie"
)

// sessionManager is the concrete implementation of SessionManager.
//
// Cookie values are the session id signed with HMAC by securecookie, so a
// forged or tampered cookie never reaches the store.
type sessionManager struct {
	// store persists the session records.
	store store.SessionStore

	// codec signs and verifies cookie values.
	codec *securecookie.SecureCookie

	// ids generates new session identifiers.
	ids *utils.SessionIDGenerator

	cookieName string

	// secure sets the Secure cookie attribute (production only).
	secure bool

	// expiresIn is the session lifetime. Zero means sessions never expire.
	expiresIn time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewSessionManager constructs a SessionManager over the given store using
// the cookie and session settings from cfg.
func NewSessionManager(sessionStore store.SessionStore, cfg config.App, logger *logger.Logger) SessionManager {
	codec := securecookie.New([]byte(cfg.CookieHashKey), nil).
		MaxAge(0).
		SetSerializer(securecookie.NopEncoder{})

	return &sessionManager{
		store:      sessionStore,
		codec:      codec,
		ids:        utils.NewSessionIDGenerator(),
		cookieName: cfg.CookieName,
		secure:     cfg.IsProduction(),
		expiresIn:  cfg.SessionExpiresIn,
		now:        time.Now,
		logger:     logger,
	}
}

func (m *sessionManager) CreateSession(ctx context.Context, userID string) (models.Session, error) {
	id, err := m.ids.Generate()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrCreatingSession, err)
	}

	session := models.Session{
		ID:     id,
		UserID: userID,
		Fresh:  true,
	}
	if m.expiresIn > 0 {
		expiresAt := m.now().Add(m.expiresIn).UTC()
		session.ExpiresAt = &expiresAt
	}

	if err = m.store.CreateSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrCreatingSession, err)
	}

	return session, nil
}

// CreateSessionCookie returns the Set-Cookie header for session.
// Expires is only set when sessions have an expiry.
func (m *sessionManager) CreateSessionCookie(session models.Session) (models.Header, error) {
	value, err := m.codec.Encode(m.cookieName, []byte(session.ID))
	if err != nil {
		return models.Header{}, fmt.Errorf("%w: %w", ErrEncodingCookie, err)
	}

	cookie := m.cookie(value)
	if session.ExpiresAt != nil {
		cookie.Expires = *session.ExpiresAt
	}

	return models.Header{Name: "Set-Cookie", Value: cookie.String()}, nil
}

func (m *sessionManager) CreateBlankSessionCookie() models.Header {
	cookie := m.cookie("")
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)

	return models.Header{Name: "Set-Cookie", Value: cookie.String()}
}

func (m *sessionManager) ReadSessionCookie(rawCookieHeader string) string {
	for _, part := range strings.Split(rawCookieHeader, ";") {
		name, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok || name != m.cookieName || value == "" {
			continue
		}

		var id []byte
		if err := m.codec.Decode(m.cookieName, strings.Trim(value, `"`), &id); err != nil {
			m.logger.Debug().Err(err).Msg("session cookie rejected")
			return ""
		}
		return string(id)
	}

	return ""
}

func (m *sessionManager) ValidateSession(ctx context.Context, sessionID string) (*models.Session, *models.User, error) {
	if sessionID == "" {
		return nil, nil, nil
	}

	session, user, err := m.store.GetSession(ctx, sessionID)
	if errors.Is(err, store.ErrSessionNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("error getting session: %w", err)
	}

	now := m.now()
	if session.ExpiredAt(now) {
		if err = m.store.DeleteSession(ctx, sessionID); err != nil {
			logger.FromContext(ctx).Warn().Err(err).Msg("failed to delete expired session")
		}
		return nil, nil, nil
	}

	if session.Fresh || m.needsExtension(session, now) {
		expiresAt := session.ExpiresAt
		if m.expiresIn > 0 {
			extended := now.Add(m.expiresIn).UTC()
			expiresAt = &extended
		}

		// renewal overwrites expiry and freshness, so concurrent renewals
		// of the same session are harmless
		if err = m.store.TouchSession(ctx, sessionID, expiresAt); err != nil {
			return nil, nil, fmt.Errorf("error renewing session: %w", err)
		}

		session.ExpiresAt = expiresAt
		session.Fresh = true
		metrics.SessionRenewals.Inc()
	}

	return &session, &user, nil
}

func (m *sessionManager) InvalidateSession(ctx context.Context, sessionID string) error {
	if err := m.store.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("error invalidating session: %w", err)
	}
	return nil
}

func (m *sessionManager) InvalidateUserSessions(ctx context.Context, userID string) error {
	if err := m.store.DeleteUserSessions(ctx, userID); err != nil {
		return fmt.Errorf("error invalidating user sessions: %w", err)
	}
	return nil
}

// needsExtension reports whether less than half of the session lifetime is left.
func (m *sessionManager) needsExtension(session models.Session, now time.Time) bool {
	if m.expiresIn <= 0 || session.ExpiresAt == nil {
		return false
	}
	return !now.Before(session.ExpiresAt.Add(-m.expiresIn / 2))
}

func (m *sessionManager) cookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
