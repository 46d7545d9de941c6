// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// MinCookieHashKeyLength is the minimal length of [App.CookieHashKey].
const MinCookieHashKeyLength = 32

var supportedDSNSchemes = []string{"postgres://", "postgresql://", "sqlite://", "memory://"}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.Environment {
	case EnvProduction, EnvDevelopment, EnvTest:
	default:
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, cfg.App.Environment)
	}

	if len(cfg.App.CookieHashKey) < MinCookieHashKeyLength {
		return fmt.Errorf("%w: cookie hash key must be at least %d bytes", ErrInvalidAppConfigs, MinCookieHashKeyLength)
	}

	if cfg.App.SessionExpiresIn < 0 || cfg.App.HashConcurrency < 0 ||
		cfg.App.LoginRatePerMinute < 0 || cfg.App.LoginBurst < 0 {
		return fmt.Errorf("%w: negative values are not allowed", ErrInvalidAppConfigs)
	}

	if !hasSupportedScheme(cfg.Storage.DB.DSN) {
		return fmt.Errorf("%w: unsupported database DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.SessionSweepInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func hasSupportedScheme(dsn string) bool {
	for _, scheme := range supportedDSNSchemes {
		if strings.HasPrefix(dsn, scheme) {
			return true
		}
	}
	return false
}
