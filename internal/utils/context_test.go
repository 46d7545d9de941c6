// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-auth-keeper/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestCtxKeys(t *testing.T) {
	if UserCtxKey.String() != "user" {
		t.Errorf("expected 'user', got '%s'", UserCtxKey.String())
	}
	if SessionCtxKey.String() != "session" {
		t.Errorf("expected 'session', got '%s'", SessionCtxKey.String())
	}
}

func TestWithAuth_RoundTrip(t *testing.T) {
	user := models.User{ID: "uid", Username: "john"}
	session := models.Session{ID: "sid", UserID: "uid"}

	ctx := WithAuth(context.Background(), user, session)

	gotUser, ok := GetUserFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true for user, got false")
	}
	if gotUser != user {
		t.Errorf("expected %+v, got %+v", user, gotUser)
	}

	gotSession, ok := GetSessionFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true for session, got false")
	}
	if gotSession.ID != "sid" {
		t.Errorf("expected session sid, got %s", gotSession.ID)
	}
}

func TestGetUserFromContext_Missing(t *testing.T) {
	user, ok := GetUserFromContext(context.Background())
	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if user.ID != "" {
		t.Errorf("expected zero user, got %+v", user)
	}
}

func TestGetUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, "not-a-user")

	if _, ok := GetUserFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetSessionFromContext_DifferentKey(t *testing.T) {
	otherKey := contextKey("otherKey")
	ctx := context.WithValue(context.Background(), otherKey, models.Session{ID: "sid"})

	if _, ok := GetSessionFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}
