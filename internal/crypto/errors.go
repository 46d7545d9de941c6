// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrInvalidHash         = errors.New("invalid encoded hash")
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
	ErrUnsupportedHash     = errors.New("unsupported hash algorithm")
)
