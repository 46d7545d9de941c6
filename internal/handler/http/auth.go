// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/metrics"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/internal/validators"
	"github.com/MKhiriev/go-auth-keeper/models"
)

const (
	actionLogin  = "login"
	actionSignup = "signup"
	actionLogout = "logout"
)

// maxFormSize limits credential form bodies.
const maxFormSize = 64 << 10

// login handles POST /login.
//
// On success it redirects to "/" with the new session cookie. Validation
// errors, incorrect credentials and throttling are answered with a
// [models.SubmissionReply].
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	credentials, err := parseCredentials(w, r)
	if err != nil {
		h.writeActionError(w, r, actionLogin, credentials, err)
		return
	}

	user, headers, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		h.writeActionError(w, r, actionLogin, credentials, err)
		return
	}

	log.Debug().Str("id", user.ID).Msg("user successfully logged in")
	observeAction(actionLogin, metrics.OutcomeSuccess)

	headers.WriteTo(w.Header())
	http.Redirect(w, r, "/", http.StatusFound)
}

// signup handles POST /signup.
//
// On success it creates the user and its first session and redirects to "/".
// A taken username is answered with a field error, not a failure.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	credentials, err := parseCredentials(w, r)
	if err != nil {
		h.writeActionError(w, r, actionSignup, credentials, err)
		return
	}

	user, headers, err := h.services.AuthService.Signup(ctx, credentials)
	if err != nil {
		h.writeActionError(w, r, actionSignup, credentials, err)
		return
	}

	log.Debug().Str("id", user.ID).Msg("user signed up")
	observeAction(actionSignup, metrics.OutcomeSuccess)

	headers.WriteTo(w.Header())
	http.Redirect(w, r, "/", http.StatusFound)
}

// logout handles POST /logout. It requires a session and answers
// {"error":"No user to log out"} with 400 otherwise.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	result := authResultFromRequest(r)
	if result.Status == service.AuthForbidden {
		observeAction(actionLogout, metrics.OutcomeForbidden)
		writeErrorResponse(w, messageForbidden, http.StatusForbidden)
		return
	}

	headers, err := h.services.AuthService.Logout(ctx, result.Session)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoUserToLogOut):
			observeAction(actionLogout, metrics.OutcomeRejected)
			writeErrorResponse(w, err.Error(), statusFromError(err))
			return
		default:
			log.Err(err).Msg("unexpected error occurred during logout")
			observeAction(actionLogout, metrics.OutcomeError)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	observeAction(actionLogout, metrics.OutcomeSuccess)

	headers.WriteTo(w.Header())
	http.Redirect(w, r, "/login", http.StatusFound)
}

// writeActionError renders a failed login or signup. Store failures are not
// recovered here and end in 500.
func (h *Handler) writeActionError(w http.ResponseWriter, r *http.Request, action string, credentials models.Credentials, err error) {
	log := logger.FromRequest(r)

	var (
		reply   models.SubmissionReply
		outcome string
	)

	if validationErr, ok := validators.AsValidationError(err); ok {
		reply = models.NewSubmissionReply(credentials, validationErr.FieldErrors)
		outcome = metrics.OutcomeInvalid
	} else {
		switch {
		case errors.Is(err, errInvalidForm):
			reply = models.NewSubmissionReply(credentials, nil, messageInvalidForm)
			outcome = metrics.OutcomeInvalid
		case errors.Is(err, service.ErrIncorrectCredentials):
			reply = models.NewSubmissionReply(credentials, nil, service.ErrIncorrectCredentials.Error())
			outcome = metrics.OutcomeRejected
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			reply = models.NewSubmissionReply(credentials, map[string][]string{
				validators.FieldUsername: {messageUsernameTaken},
			})
			outcome = metrics.OutcomeConflict
		default:
			log.Err(err).Str("action", action).Msg("unexpected error occurred during form action")
			observeAction(action, metrics.OutcomeError)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Info().Err(err).Str("action", action).Str("username", credentials.Username).Msg("form submission rejected")
	observeAction(action, outcome)

	_, _ = utils.WriteJSON(w, reply, statusFromError(err))
}

// parseCredentials reads username and password from a urlencoded or
// multipart form body.
func parseCredentials(w http.ResponseWriter, r *http.Request) (models.Credentials, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormSize)

	if err := r.ParseMultipartForm(maxFormSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return models.Credentials{}, fmt.Errorf("%w: %w", errInvalidForm, err)
	}

	return models.Credentials{
		Username: r.PostFormValue(validators.FieldUsername),
		Password: r.PostFormValue(validators.FieldPassword),
	}, nil
}

func observeAction(action, outcome string) {
	metrics.AuthActions.WithLabelValues(action, outcome).Inc()
}

func actionFromRequest(r *http.Request) string {
	return strings.TrimPrefix(r.URL.Path, "/")
}
