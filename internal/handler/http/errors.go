// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned when the request body is not exactly one
	// JSON object.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrInvalidUsername is returned when username is present and truthy but
	// not a string, e.g. 42 or ["alice"].
	ErrInvalidUsername = errors.New("username must be a string")
)
