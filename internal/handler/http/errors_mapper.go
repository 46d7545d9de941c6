// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/validators"
)

var errorStatusMap = map[error]int{
	errInvalidForm:     http.StatusBadRequest,
	errTooManyAttempts: http.StatusTooManyRequests,

	service.ErrIncorrectCredentials: http.StatusUnauthorized,
	service.ErrNoUserToLogOut:       http.StatusBadRequest,
	service.ErrForbidden:            http.StatusForbidden,
	service.ErrCreatingSession:      http.StatusInternalServerError,
	service.ErrEncodingCookie:       http.StatusInternalServerError,

	store.ErrUsernameAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
}

func statusFromError(err error) int {
	if _, ok := validators.AsValidationError(err); ok {
		return http.StatusBadRequest
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
