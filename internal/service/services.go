// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/crypto"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
)

type Services struct {
	SessionManager SessionManager
	Authenticator  Authenticator
	AuthService    AuthService
	OriginPolicy   OriginPolicy
}

func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	origins := NewOriginPolicy(cfg.App)
	sessions := NewSessionManager(storages.SessionStore, cfg.App, logger)

	authService := NewAuthService(storages.UserRepository, sessions, hasher, logger)

	return &Services{
		SessionManager: sessions,
		Authenticator:  NewAuthenticator(sessions, origins, logger),
		AuthService:    NewAuthValidationService().Wrap(authService),
		OriginPolicy:   origins,
	}
}
