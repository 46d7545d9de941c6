// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/validators"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// AuthValidationService checks submitted credentials against the credential
// schema before they reach the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewCredentialsValidator(),
	}
}

func (v *AuthValidationService) Login(ctx context.Context, credentials models.Credentials) (models.User, models.Headers, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, nil, fmt.Errorf("error during credentials validation before login: %w", err)
	}

	return v.inner.Login(ctx, credentials)
}

func (v *AuthValidationService) Signup(ctx context.Context, credentials models.Credentials) (models.User, models.Headers, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, nil, fmt.Errorf("error during credentials validation before signup: %w", err)
	}

	return v.inner.Signup(ctx, credentials)
}

func (v *AuthValidationService) Logout(ctx context.Context, session *models.Session) (models.Headers, error) {
	return v.inner.Logout(ctx, session)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
