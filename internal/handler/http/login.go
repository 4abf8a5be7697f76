// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/coffeetalk/internal/logger"
	"github.com/MKhiriev/coffeetalk/internal/utils"
	"github.com/MKhiriev/coffeetalk/models"
)

// maxLoginBodySize caps the login request body.
const maxLoginBodySize = 1 << 20

// login admits the user named in the body to the room and returns an access
// token for it. The body is read as JSON whatever its Content-Type says.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	loginRequest, err := decodeLoginRequest(http.MaxBytesReader(w, r.Body, maxLoginBodySize))
	if err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("error decoding login request")
		utils.WriteJSONError(w, statusFromError(err))
		return
	}

	loginResponse, err := h.services.AuthService.Login(r.Context(), loginRequest)
	if err != nil {
		status := statusFromError(err)
		event := log.Warn()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.Err(err).Str("func", "*Handler.login").Int("status", status).Msg("login failed")
		utils.WriteJSONError(w, status)
		return
	}

	if _, err = utils.WriteJSON(w, loginResponse, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("error writing login response")
	}
}

// loginBody keeps username raw so that JSON falsy values can be told apart
// from undecodable bodies.
type loginBody struct {
	Username json.RawMessage `json:"username"`
}

// decodeLoginRequest reads exactly one JSON value from body.
//
// A missing username or one that is JSON falsy (null, false, 0, "", [] or {})
// yields an empty request, which the service rejects as a missing username.
// A non-empty string becomes the username. Any other value wraps
// ErrInvalidUsername. Undecodable bodies and trailing data wrap ErrInvalidJSON.
// A top-level null decodes to an empty request as well.
func decodeLoginRequest(body io.Reader) (models.LoginRequest, error) {
	dec := json.NewDecoder(body)

	var raw loginBody
	if err := dec.Decode(&raw); err != nil {
		return models.LoginRequest{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return models.LoginRequest{}, fmt.Errorf("%w: trailing data after JSON value", ErrInvalidJSON)
	}

	if len(raw.Username) == 0 {
		return models.LoginRequest{}, nil
	}

	var username any
	if err := json.Unmarshal(raw.Username, &username); err != nil {
		return models.LoginRequest{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	if isFalsy(username) {
		return models.LoginRequest{}, nil
	}

	name, ok := username.(string)
	if !ok {
		return models.LoginRequest{}, fmt.Errorf("%w: got %T", ErrInvalidUsername, username)
	}

	return models.LoginRequest{Username: name}, nil
}

// isFalsy reports whether a decoded JSON value counts as absent.
func isFalsy(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case bool:
		return !value
	case float64:
		return value == 0
	case string:
		return value == ""
	case []any:
		return len(value) == 0
	case map[string]any:
		return len(value) == 0
	default:
		return false
	}
}
