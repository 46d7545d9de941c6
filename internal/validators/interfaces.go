// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks submitted credentials against the username and
// password rules before they reach the auth service.
//
// Failures are reported as a *ValidationError holding every message per
// field, so forms can render all of them at once.
package validators

import "context"

// Validator validates obj, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
