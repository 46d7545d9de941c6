// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrIncorrectCredentials covers both an unknown username and a wrong
	// password. Its message is shown to the user as is.
	ErrIncorrectCredentials = errors.New("Incorrect username or password") //nolint:staticcheck // user-facing message

	ErrNoUserToLogOut = errors.New("No user to log out") //nolint:staticcheck // user-facing message

	ErrForbidden = errors.New("forbidden")

	ErrCreatingSession = errors.New("error creating session")
	ErrEncodingCookie  = errors.New("error encoding session cookie")
)
