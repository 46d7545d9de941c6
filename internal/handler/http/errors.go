// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// errInvalidForm is returned when a form body cannot be parsed.
	errInvalidForm = errors.New("invalid form data")

	// errTooManyAttempts is returned when a client exceeds its login rate.
	errTooManyAttempts = errors.New("too many attempts, try again later")
)

// Messages rendered into submission replies.
const (
	messageInvalidForm     = "Invalid form data"
	messageUsernameTaken   = "Username already exists"
	messageTooManyAttempts = "Too many attempts. Try again later"
	messageUnauthorized    = "Unauthorized"
	messageForbidden       = "Forbidden"
)
