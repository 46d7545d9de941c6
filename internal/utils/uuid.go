// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"

	"github.com/google/uuid"
)

// sessionIDEntropy is the number of random bytes behind a session id
// (160 bits, 32 base32 characters).
const sessionIDEntropy = 20

var lowerBase32 = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

// UUIDGenerator produces time-ordered UUIDv7 identifiers.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// SessionIDGenerator produces unguessable session identifiers: 20 bytes from
// crypto/rand encoded as lowercase unpadded base32.
type SessionIDGenerator struct {
}

func NewSessionIDGenerator() *SessionIDGenerator {
	return &SessionIDGenerator{}
}

func (g *SessionIDGenerator) Generate() (string, error) {
	b := make([]byte, sessionIDEntropy)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}

	return lowerBase32.EncodeToString(b), nil
}
