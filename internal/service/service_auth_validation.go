// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/coffeetalk/internal/validators"
	"github.com/MKhiriev/coffeetalk/models"
)

// AuthValidationService validates login requests before they reach the
// wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewLoginValidator(),
	}
}

// Login returns ErrUsernameRequired (wrapped) for a missing username and
// ErrInvalidDataProvided (wrapped) for any other validation failure.
func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		if errors.Is(err, validators.ErrUsernameRequired) {
			return models.LoginResponse{}, fmt.Errorf("%w: %w", ErrUsernameRequired, err)
		}
		return models.LoginResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}
