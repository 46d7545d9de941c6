// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the username/password pair submitted by the login and
// signup forms.
type Credentials struct {
	Username string `json:"username" validate:"min=3,max=31,username"`
	Password string `json:"-" validate:"min=6,max=255,printascii"`
}
