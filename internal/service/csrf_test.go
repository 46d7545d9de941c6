// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestVerifyRequestOrigin(t *testing.T) {
	tests := []struct {
		name   string
		origin string
		host   string
		want   bool
	}{
		{name: "same host", origin: "https://example.com", host: "example.com", want: true},
		{name: "same host with port", origin: "http://localhost:3000", host: "localhost:3000", want: true},
		{name: "default https port", origin: "https://example.com", host: "example.com:443", want: true},
		{name: "default http port", origin: "http://example.com:80", host: "example.com", want: true},
		{name: "case insensitive", origin: "https://Example.COM", host: "example.com", want: true},
		{name: "other host", origin: "https://evil.com", host: "example.com", want: false},
		{name: "other port", origin: "http://localhost:3001", host: "localhost:3000", want: false},
		{name: "subdomain", origin: "https://api.example.com", host: "example.com", want: false},
		{name: "null origin", origin: "null", host: "example.com", want: false},
		{name: "empty origin", origin: "", host: "example.com", want: false},
		{name: "empty host", origin: "https://example.com", host: "", want: false},
		{name: "malformed origin", origin: "://", host: "example.com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifyRequestOrigin(tt.origin, tt.host))
		})
	}
}

func TestOriginPolicy_Allow(t *testing.T) {
	production := OriginPolicy{Enforce: true}
	withBypass := OriginPolicy{Enforce: true, DevHostPrefix: "localhost:"}

	request := func(method, host, origin string) models.AuthRequest {
		headers := models.Headers{{Name: "Host", Value: host}}
		if origin != "" {
			headers.Add("Origin", origin)
		}
		return models.AuthRequest{Method: method, Headers: headers}
	}

	tests := []struct {
		name   string
		policy OriginPolicy
		req    models.AuthRequest
		want   bool
	}{
		{
			name:   "not enforced outside production",
			policy: OriginPolicy{},
			req:    request(http.MethodPost, "example.com", "https://evil.com"),
			want:   true,
		},
		{
			name:   "matching origin",
			policy: production,
			req:    request(http.MethodPost, "example.com", "https://example.com"),
			want:   true,
		},
		{
			name:   "mismatched origin on post",
			policy: production,
			req:    request(http.MethodPost, "example.com", "https://evil.com"),
			want:   false,
		},
		{
			name:   "mismatched origin on get",
			policy: production,
			req:    request(http.MethodGet, "example.com", "https://evil.com"),
			want:   false,
		},
		{
			name:   "missing origin on post",
			policy: production,
			req:    request(http.MethodPost, "example.com", ""),
			want:   false,
		},
		{
			name:   "missing origin on get",
			policy: production,
			req:    request(http.MethodGet, "example.com", ""),
			want:   true,
		},
		{
			name:   "dev host prefix bypass",
			policy: withBypass,
			req:    request(http.MethodPost, "localhost:3000", "https://evil.com"),
			want:   true,
		},
		{
			name:   "dev host prefix does not match",
			policy: withBypass,
			req:    request(http.MethodPost, "example.com", "https://evil.com"),
			want:   false,
		},
		{
			name:   "no bypass without a prefix",
			policy: production,
			req:    request(http.MethodPost, "localhost:3000", "https://evil.com"),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy.Allow(tt.req))
		})
	}
}

func TestNewOriginPolicy(t *testing.T) {
	cfg := config.App{Environment: config.EnvProduction, CSRFDevHostPrefix: "localhost:"}
	assert.Equal(t, OriginPolicy{Enforce: true, DevHostPrefix: "localhost:"}, NewOriginPolicy(cfg))

	cfg.Environment = config.EnvDevelopment
	assert.False(t, NewOriginPolicy(cfg).Enforce)
}
