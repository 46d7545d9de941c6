// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-auth-keeper/internal/validators"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthValidationService_RejectsBeforeInner(t *testing.T) {
	ctrl := gomock.NewController(t)
	// inner has no expectations: invalid credentials never reach the store
	inner, _, _, _ := newTestAuthSvc(t, ctrl)
	svc := NewAuthValidationService().Wrap(inner)
	ctx := context.Background()

	_, _, err := svc.Login(ctx, models.Credentials{Username: "test_user", Password: "buzz"})
	require.Error(t, err)

	validationErr, ok := validators.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"String must contain at least 6 character(s)"}, validationErr.FieldErrors["password"])
	assert.NotContains(t, validationErr.FieldErrors, "username")

	_, _, err = svc.Signup(ctx, models.Credentials{Username: "Bad Name", Password: "password"})
	validationErr, ok = validators.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"Invalid"}, validationErr.FieldErrors["username"])
}

func TestAuthValidationService_PassesValidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner, mockUsers, mockSessions, mockHasher := newTestAuthSvc(t, ctrl)
	svc := NewAuthValidationService().Wrap(inner)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByUsername(ctx, "test_user").Return(storedUser, nil)
	mockHasher.EXPECT().Verify(ctx, storedUser.HashedPassword, "password").Return(true, nil)
	mockSessions.EXPECT().CreateSession(ctx, gomock.Any()).Return(nil)

	_, headers, err := svc.Login(ctx, models.Credentials{Username: "test_user", Password: "password"})
	require.NoError(t, err)
	assert.Len(t, headers, 1)

	_, err = svc.Logout(ctx, nil)
	assert.ErrorIs(t, err, ErrNoUserToLogOut)
}
