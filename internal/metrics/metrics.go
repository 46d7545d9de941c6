// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics declares the prometheus collectors of the auth server.
// Collectors are registered with the default registry and exposed by the
// HTTP handler at /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels shared by the counters below.
const (
	OutcomeSuccess      = "success"
	OutcomeInvalid      = "invalid"
	OutcomeRejected     = "rejected"
	OutcomeConflict     = "conflict"
	OutcomeError        = "error"
	OutcomeAuthorized   = "authorized"
	OutcomeUnauthorized = "unauthorized"
	OutcomeForbidden    = "forbidden"
	OutcomeThrottled    = "throttled"
)

var (
	AuthActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_keeper_actions_total",
			Help: "Total number of login, signup and logout submissions by outcome",
		},
		[]string{"action", "outcome"},
	)

	Authentications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_keeper_authentications_total",
			Help: "Total number of authenticated requests by outcome",
		},
		[]string{"outcome"},
	)

	SessionRenewals = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_keeper_session_renewals_total",
			Help: "Total number of sessions renewed with a fresh cookie",
		},
	)

	SessionsSwept = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_keeper_sessions_swept_total",
			Help: "Total number of expired sessions deleted by the sweeper",
		},
	)

	PasswordHashDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "auth_keeper_password_hash_duration_seconds",
			Help:    "Time taken to hash or verify a password",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

// ObserveHash records the duration of a password hash operation started at start.
func ObserveHash(operation string, start time.Time) {
	PasswordHashDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
