// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/rs/zerolog"
)

type ctxKey int

const authResultCtxKey ctxKey = iota

// withSession authenticates the request and stores the
// [service.AuthResult] in the request context. An authorized user and
// session are also stored via [utils.WithAuth].
//
// Renewed session cookies are not written here: handlers decide whether
// their response carries them.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		result, err := h.services.Authenticator.Authenticate(ctx, models.AuthRequestFromHTTP(r))
		if err != nil {
			logger.FromRequest(r).Err(err).Msg("error occurred during request authentication")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		ctx = context.WithValue(ctx, authResultCtxKey, result)
		if result.Authorized() {
			ctx = utils.WithAuth(ctx, *result.User, *result.Session)

			l := logger.FromContext(ctx).GetChildLogger()
			l.UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("user_id", result.User.ID)
			})
			ctx = l.WithContext(ctx)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireUser lets only authorized requests through. Unauthorized requests
// are redirected to the login page, forbidden ones get 403.
func (h *Handler) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result := authResultFromRequest(r)

		switch result.Status {
		case service.AuthForbidden:
			writeErrorResponse(w, messageForbidden, http.StatusForbidden)
			return
		case service.AuthUnauthorized:
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		writePendingCookies(w, result)
		next.ServeHTTP(w, r)
	})
}

// authResultFromRequest returns the result stored by withSession. Requests
// that did not pass through it are unauthorized.
func authResultFromRequest(r *http.Request) service.AuthResult {
	result, _ := r.Context().Value(authResultCtxKey).(service.AuthResult)
	return result
}

func writePendingCookies(w http.ResponseWriter, result service.AuthResult) {
	result.PendingCookies.WriteTo(w.Header())
}

func writeErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}
