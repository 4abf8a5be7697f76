// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// ProviderError is a non-2xx answer of the provider's REST API.
// It unwraps to the sentinel matching Status.
type ProviderError struct {
	// Status is the HTTP status code.
	Status int
	// Code is the provider's numeric error code, 0 when absent.
	Code int
	// Message is the provider's error message or the raw response body.
	Message string
	// MoreInfo links to the provider's documentation for Code.
	MoreInfo string

	err error
}

func (e *ProviderError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("provider error: http %d (code %d): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("provider error: http %d: %s", e.Status, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.err
}
