// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied by [StructuredConfig.applyDefaults].
// The argon2id parameters follow the OWASP minimum recommendation
// (19 MiB, 2 iterations, 1 lane).
const (
	DefaultEnvironment          = EnvDevelopment
	DefaultCookieName           = "auth_session"
	DefaultArgonMemory          = 19456
	DefaultArgonIterations      = 2
	DefaultArgonParallelism     = 1
	DefaultHashConcurrency      = 4
	DefaultLoginRatePerMinute   = 10
	DefaultLoginBurst           = 5
	DefaultRequestTimeout       = 30 * time.Second
	DefaultSessionSweepInterval = 10 * time.Minute
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Environment == "" {
		cfg.App.Environment = DefaultEnvironment
	}
	if cfg.App.CookieName == "" {
		cfg.App.CookieName = DefaultCookieName
	}
	if cfg.App.ArgonMemory == 0 {
		cfg.App.ArgonMemory = DefaultArgonMemory
	}
	if cfg.App.ArgonIterations == 0 {
		cfg.App.ArgonIterations = DefaultArgonIterations
	}
	if cfg.App.ArgonParallelism == 0 {
		cfg.App.ArgonParallelism = DefaultArgonParallelism
	}
	if cfg.App.HashConcurrency == 0 {
		cfg.App.HashConcurrency = DefaultHashConcurrency
	}
	if cfg.App.LoginRatePerMinute == 0 {
		cfg.App.LoginRatePerMinute = DefaultLoginRatePerMinute
	}
	if cfg.App.LoginBurst == 0 {
		cfg.App.LoginBurst = DefaultLoginBurst
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.SessionSweepInterval == 0 {
		cfg.Workers.SessionSweepInterval = DefaultSessionSweepInterval
	}
}
