// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix      = "session:"
	userSessionsKeyPrefix = "user_sessions:"
)

// redisSession is the JSON document stored under a session key.
type redisSession struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Fresh     bool       `json:"fresh"`
}

// redisSessionStore keeps sessions in Redis and resolves their owners through
// a [UserRepository]. Each session lives under "session:<id>" and expires
// with the session; "user_sessions:<user id>" indexes the ids of a user.
type redisSessionStore struct {
	rdb    *redis.Client
	users  UserRepository
	logger *logger.Logger
}

// NewRedisClient connects to Redis and verifies the connection with PING.
func NewRedisClient(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("error connecting redis (ping)")
		rdb.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewRedisClient").Msg("connected to redis successfully")

	return rdb, nil
}

// NewRedisSessionStore constructs a [SessionStore] on top of rdb.
func NewRedisSessionStore(rdb *redis.Client, users UserRepository, logger *logger.Logger) SessionStore {
	logger.Debug().Msg("creating redis session store")
	return &redisSessionStore{
		rdb:    rdb,
		users:  users,
		logger: logger,
	}
}

func (s *redisSessionStore) CreateSession(ctx context.Context, session models.Session) error {
	payload, err := json.Marshal(toRedisSession(session))
	if err != nil {
		return err
	}

	key := sessionKey(session.ID)
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, payload, 0)
		if session.ExpiresAt != nil {
			pipe.ExpireAt(ctx, key, *session.ExpiresAt)
		}
		pipe.SAdd(ctx, userSessionsKey(session.UserID), session.ID)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionStore.CreateSession").Msg("error saving session")
		return fmt.Errorf("error saving session: %w", err)
	}

	return nil
}

func (s *redisSessionStore) GetSession(ctx context.Context, sessionID string) (models.Session, models.User, error) {
	record, err := s.get(ctx, sessionID)
	if err != nil {
		return models.Session{}, models.User{}, err
	}

	user, err := s.users.FindUserByID(ctx, record.UserID)
	if errors.Is(err, ErrNoUserWasFound) {
		// orphaned session
		if delErr := s.DeleteSession(ctx, sessionID); delErr != nil {
			return models.Session{}, models.User{}, delErr
		}
		return models.Session{}, models.User{}, ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, models.User{}, err
	}

	return record.toModel(), user, nil
}

func (s *redisSessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	record, err := s.get(ctx, sessionID)
	if errors.Is(err, ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, sessionKey(sessionID))
		pipe.SRem(ctx, userSessionsKey(record.UserID), sessionID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}

	return nil
}

func (s *redisSessionStore) DeleteUserSessions(ctx context.Context, userID string) error {
	indexKey := userSessionsKey(userID)

	ids, err := s.rdb.SMembers(ctx, indexKey).Result()
	if err != nil {
		return fmt.Errorf("error listing user sessions: %w", err)
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, sessionKey(id))
	}
	keys = append(keys, indexKey)

	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("error deleting user sessions: %w", err)
	}

	return nil
}

// TouchSession rewrites the record inside a WATCH transaction so that a
// concurrent delete is never undone.
func (s *redisSessionStore) TouchSession(ctx context.Context, sessionID string, expiresAt *time.Time) error {
	key := sessionKey(sessionID)

	for {
		err := s.rdb.Watch(ctx, func(tx *redis.Tx) error {
			data, err := tx.Get(ctx, key).Bytes()
			if errors.Is(err, redis.Nil) {
				return nil
			}
			if err != nil {
				return err
			}

			var record redisSession
			if err := json.Unmarshal(data, &record); err != nil {
				return err
			}
			record.ExpiresAt = expiresAt
			record.Fresh = false

			payload, err := json.Marshal(record)
			if err != nil {
				return err
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, payload, 0)
				if expiresAt != nil {
					pipe.ExpireAt(ctx, key, *expiresAt)
				}
				return nil
			})
			return err
		}, key)

		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return fmt.Errorf("error touching session: %w", err)
		}
		return nil
	}
}

// DeleteExpiredSessions prunes the per-user indexes. Redis evicts the
// session records themselves when they expire, so the returned count is the
// number of dangling index entries removed.
func (s *redisSessionStore) DeleteExpiredSessions(ctx context.Context, _ time.Time) (int64, error) {
	var removed int64

	iter := s.rdb.Scan(ctx, 0, userSessionsKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		indexKey := iter.Val()

		ids, err := s.rdb.SMembers(ctx, indexKey).Result()
		if err != nil {
			return removed, fmt.Errorf("error listing user sessions: %w", err)
		}

		for _, id := range ids {
			exists, err := s.rdb.Exists(ctx, sessionKey(id)).Result()
			if err != nil {
				return removed, err
			}
			if exists > 0 {
				continue
			}
			n, err := s.rdb.SRem(ctx, indexKey, id).Result()
			if err != nil {
				return removed, err
			}
			removed += n
		}
	}
	if err := iter.Err(); err != nil {
		return removed, fmt.Errorf("error scanning user sessions: %w", err)
	}

	return removed, nil
}

func (s *redisSessionStore) get(ctx context.Context, sessionID string) (redisSession, error) {
	data, err := s.rdb.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return redisSession{}, ErrSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionStore.get").Msg("error reading session")
		return redisSession{}, fmt.Errorf("error reading session: %w", err)
	}

	var record redisSession
	if err := json.Unmarshal(data, &record); err != nil {
		return redisSession{}, fmt.Errorf("error decoding session: %w", err)
	}

	return record, nil
}

func toRedisSession(session models.Session) redisSession {
	return redisSession{
		ID:        session.ID,
		UserID:    session.UserID,
		ExpiresAt: session.ExpiresAt,
		Fresh:     session.Fresh,
	}
}

func (r redisSession) toModel() models.Session {
	return models.Session{
		ID:        r.ID,
		UserID:    r.UserID,
		ExpiresAt: r.ExpiresAt,
		Fresh:     r.Fresh,
	}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func userSessionsKey(userID string) string {
	return userSessionsKeyPrefix + userID
}

