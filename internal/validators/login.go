// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/coffeetalk/models"
	"github.com/go-playground/validator/v10"
)

// loginFieldErrors maps a failing LoginRequest field to its sentinel.
var loginFieldErrors = map[string]error{
	"Username": ErrUsernameRequired,
}

// LoginValidator validates login requests against the validate tags declared
// on [models.LoginRequest].
type LoginValidator struct {
	validate *validator.Validate
}

// NewLoginValidator constructs a LoginValidator and returns it as the
// Validator interface.
func NewLoginValidator() Validator {
	return &LoginValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate accepts models.LoginRequest or *models.LoginRequest.
//
// Returns ErrUsernameRequired for a missing or empty username and
// ErrUnsupportedType for any other input type.
func (v *LoginValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value)
	case *models.LoginRequest:
		if value == nil {
			return ErrUsernameRequired
		}
		return v.validateLoginRequest(ctx, *value)
	default:
		return ErrUnsupportedType
	}
}

func (v *LoginValidator) validateLoginRequest(ctx context.Context, req models.LoginRequest) error {
	err := v.validate.StructCtx(ctx, req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldErr := range validationErrors {
			if sentinel, ok := loginFieldErrors[fieldErr.StructField()]; ok {
				return sentinel
			}
		}
	}

	return fmt.Errorf("error validating login request: %w", err)
}
