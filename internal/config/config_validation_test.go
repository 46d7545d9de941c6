// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidate_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid memory config",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:   "valid postgres config",
			mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "postgres://u:p@localhost/db" },
		},
		{
			name:   "valid sqlite config",
			mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "sqlite:///tmp/auth.db" },
		},
		{
			name:    "unknown environment",
			mutate:  func(cfg *StructuredConfig) { cfg.App.Environment = "staging" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "short cookie hash key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.CookieHashKey = "short" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "negative session lifetime",
			mutate:  func(cfg *StructuredConfig) { cfg.App.SessionExpiresIn = -time.Hour },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "empty DSN",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unsupported DSN scheme",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "mysql://localhost" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing HTTP address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "negative sweep interval",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.SessionSweepInterval = -time.Second },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := minimalConfig()
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
