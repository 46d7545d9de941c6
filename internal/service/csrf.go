// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"net/url"
	"strings"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// OriginPolicy rejects cross-site requests by comparing the Origin header
// with the Host header.
type OriginPolicy struct {
	// Enforce enables the check. It is only set in production.
	Enforce bool

	// DevHostPrefix is a Host prefix for which the check is skipped.
	// Empty disables the bypass.
	DevHostPrefix string
}

// NewOriginPolicy builds the policy for the configured environment.
func NewOriginPolicy(cfg config.App) OriginPolicy {
	return OriginPolicy{
		Enforce:       cfg.IsProduction(),
		DevHostPrefix: cfg.CSRFDevHostPrefix,
	}
}

// Allow reports whether the request passes the origin check.
//
// A present Origin must match Host for every method. A missing Origin is
// only accepted for safe methods.
func (p OriginPolicy) Allow(req models.AuthRequest) bool {
	if !p.Enforce {
		return true
	}

	host := req.Headers.Get("Host")
	if p.DevHostPrefix != "" && strings.HasPrefix(host, p.DevHostPrefix) {
		return true
	}

	origin := req.Headers.Get("Origin")
	if origin == "" {
		return req.SafeMethod()
	}

	return VerifyRequestOrigin(origin, host)
}

// VerifyRequestOrigin reports whether origin (e.g. "https://example.com")
// points at host (e.g. "example.com:443"). Hosts are compared
// case-insensitively and default ports are ignored.
func VerifyRequestOrigin(origin, host string) bool {
	if origin == "" || host == "" {
		return false
	}

	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}

	return normalizeHost(u.Host, u.Scheme) == normalizeHost(host, u.Scheme)
}

func normalizeHost(host, scheme string) string {
	host = strings.ToLower(host)
	switch strings.ToLower(scheme) {
	case "http":
		return strings.TrimSuffix(host, ":80")
	case "https":
		return strings.TrimSuffix(host, ":443")
	}
	return host
}
