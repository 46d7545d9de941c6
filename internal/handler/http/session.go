// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// session handles GET /api/session and returns the current user and session.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	result := authResultFromRequest(r)

	switch result.Status {
	case service.AuthForbidden:
		writeErrorResponse(w, messageForbidden, http.StatusForbidden)
		return
	case service.AuthUnauthorized:
		writeErrorResponse(w, messageUnauthorized, http.StatusUnauthorized)
		return
	}

	writePendingCookies(w, result)
	_, _ = utils.WriteJSON(w, models.SessionResponse{User: *result.User, Session: *result.Session}, http.StatusOK)
}
