// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into self-describing one-way hashes
// and checks candidates against them.
//
// Hash output embeds the algorithm, its parameters and the salt, so Verify
// needs nothing but the stored hash and the candidate. Both methods are
// CPU and memory heavy; implementations bound how many run at once and
// return ctx.Err() if the caller gives up while waiting for a slot.
type PasswordHasher interface {
	// Hash returns the encoded hash of password.
	Hash(ctx context.Context, password string) (string, error)

	// Verify reports whether password matches encodedHash. A malformed hash
	// is an error; a mismatch is (false, nil).
	Verify(ctx context.Context, encodedHash, password string) (bool, error)
}
