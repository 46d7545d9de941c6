// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/metrics"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// withOriginCheck rejects cross-site form submissions with 403 before they
// reach an action that does not authenticate the request itself.
func (h *Handler) withOriginCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.services.OriginPolicy.Allow(models.AuthRequestFromHTTP(r)) {
			logger.FromRequest(r).Warn().
				Str("origin", r.Header.Get("Origin")).
				Str("host", r.Host).
				Msg("request origin rejected")
			observeAction(actionFromRequest(r), metrics.OutcomeForbidden)
			writeErrorResponse(w, messageForbidden, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
