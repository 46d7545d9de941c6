// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	// limiter throttles login and signup attempts per client IP.
	limiter *ipRateLimiter

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		limiter:        newIPRateLimiter(cfg.App.LoginRatePerMinute, cfg.App.LoginBurst),
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
