// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/metrics"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
)

// SessionSweeper periodically deletes expired sessions from the session
// store. Expired sessions are already rejected on lookup; sweeping only
// reclaims storage.
type SessionSweeper struct {
	store    store.SessionStore
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger
}

func NewSessionSweeper(sessions store.SessionStore, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	return &SessionSweeper{
		store:    sessions,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *SessionSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *SessionSweeper) sweep(ctx context.Context) {
	deleted, err := s.store.DeleteExpiredSessions(ctx, s.now())
	if err != nil {
		s.logger.Err(err).Msg("error deleting expired sessions")
		return
	}

	if deleted > 0 {
		metrics.SessionsSwept.Add(float64(deleted))
		s.logger.Debug().Int64("deleted", deleted).Msg("expired sessions deleted")
	}
}
