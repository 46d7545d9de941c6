// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// MemoryStorage keeps users and sessions in process memory. It implements
// both [UserRepository] and [SessionStore] and backs the memory:// DSN.
// Data is lost when the process exits.
type MemoryStorage struct {
	mu sync.RWMutex

	users           map[string]models.User
	usersByUsername map[string]string
	sessions        map[string]models.Session
}

// NewMemoryStorage returns an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users:           make(map[string]models.User),
		usersByUsername: make(map[string]string),
		sessions:        make(map[string]models.Session),
	}
}

func (m *MemoryStorage) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.usersByUsername[user.Username]; taken {
		return models.User{}, ErrUsernameAlreadyExists
	}
	if _, taken := m.users[user.ID]; taken {
		return models.User{}, ErrUsernameAlreadyExists
	}

	m.users[user.ID] = user
	m.usersByUsername[user.Username] = user.ID
	return user, nil
}

func (m *MemoryStorage) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.usersByUsername[username]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return m.users[id], nil
}

func (m *MemoryStorage) FindUserByID(_ context.Context, userID string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[userID]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return user, nil
}

func (m *MemoryStorage) CreateSession(_ context.Context, session models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session.ExpiresAt = copyTime(session.ExpiresAt)
	m.sessions[session.ID] = session
	return nil
}

func (m *MemoryStorage) GetSession(_ context.Context, sessionID string) (models.Session, models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[sessionID]
	if !ok {
		return models.Session{}, models.User{}, ErrSessionNotFound
	}
	user, ok := m.users[session.UserID]
	if !ok {
		return models.Session{}, models.User{}, ErrSessionNotFound
	}

	session.ExpiresAt = copyTime(session.ExpiresAt)
	return session, user, nil
}

func (m *MemoryStorage) DeleteSession(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
	return nil
}

func (m *MemoryStorage) DeleteUserSessions(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, session := range m.sessions {
		if session.UserID == userID {
			delete(m.sessions, id)
		}
	}
	return nil
}

func (m *MemoryStorage) TouchSession(_ context.Context, sessionID string, expiresAt *time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[sessionID]
	if !ok {
		return nil
	}

	session.ExpiresAt = copyTime(expiresAt)
	session.Fresh = false
	m.sessions[sessionID] = session
	return nil
}

func (m *MemoryStorage) DeleteExpiredSessions(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var deleted int64
	for id, session := range m.sessions {
		if session.ExpiredAt(now) {
			delete(m.sessions, id)
			deleted++
		}
	}
	return deleted, nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
