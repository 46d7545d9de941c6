// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
)

// Storages groups the repositories used by the service layer.
type Storages struct {
	UserRepository UserRepository
	SessionStore   SessionStore

	closers []io.Closer
}

// NewStorages initialises the storage layer selected by cfg:
//  1. The database DSN scheme picks the user store: postgres:// or
//     postgresql:// (pgx), sqlite:// (go-sqlite3) or memory://.
//  2. SQL databases are migrated before use.
//  3. When a Redis address is configured, sessions are kept in Redis;
//     otherwise they live next to the users.
//
// Close releases every connection opened here.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")
	storages := &Storages{}

	switch {
	case strings.HasPrefix(cfg.DB.DSN, "postgres://"), strings.HasPrefix(cfg.DB.DSN, "postgresql://"):
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		if err := storages.useSQL(db, log); err != nil {
			return nil, err
		}

	case strings.HasPrefix(cfg.DB.DSN, sqliteScheme):
		db, err := NewConnectSQLite(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err := storages.useSQL(db, log); err != nil {
			return nil, err
		}

	case strings.HasPrefix(cfg.DB.DSN, "memory://"):
		memory := NewMemoryStorage()
		storages.UserRepository = memory
		storages.SessionStore = memory

	default:
		return nil, ErrUnsupportedDSN
	}

	if cfg.Redis.Address != "" {
		rdb, err := NewRedisClient(ctx, cfg.Redis, log)
		if err != nil {
			return nil, errors.Join(err, storages.Close())
		}
		storages.closers = append(storages.closers, rdb)
		storages.SessionStore = NewRedisSessionStore(rdb, storages.UserRepository, log)
	}

	return storages, nil
}

func (s *Storages) useSQL(db *DB, log *logger.Logger) error {
	s.closers = append(s.closers, db)

	if err := db.Migrate(); err != nil {
		return errors.Join(fmt.Errorf("migration failed: %w", err), s.Close())
	}

	s.UserRepository = NewUserRepository(db, log)
	s.SessionStore = NewSessionRepository(db, log)
	return nil
}

// Close closes the underlying connections.
func (s *Storages) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	s.closers = nil
	return errors.Join(errs...)
}
