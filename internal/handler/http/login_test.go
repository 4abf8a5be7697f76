// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/coffeetalk/internal/logger"
	"github.com/MKhiriev/coffeetalk/internal/mock"
	"github.com/MKhiriev/coffeetalk/internal/service"
	"github.com/MKhiriev/coffeetalk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newLoginTestHandler(t *testing.T) (*Handler, *mock.MockAuthService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	authService := mock.NewMockAuthService(ctrl)

	return &Handler{
		services: &service.Services{AuthService: authService},
		logger:   logger.Nop(),
	}, authService
}

func postLogin(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req = req.WithContext(logger.Nop().Logger.WithContext(req.Context()))
	rr := httptest.NewRecorder()
	h.login(rr, req)
	return rr
}

func TestLogin_Success(t *testing.T) {
	h, authService := newLoginTestHandler(t)

	authService.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Username: "alice"}).
		Return(models.LoginResponse{Token: "signed.jwt.token", ConversationSID: "CH123"}, nil)

	rr := postLogin(h, `{"username":"alice"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.Token)
	assert.Equal(t, "CH123", resp.ConversationSID)
}

func TestLogin_DecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed JSON", body: `{"username":`},
		{name: "empty body", body: ``},
		{name: "array instead of object", body: `["alice"]`},
		{name: "plain text", body: `username=alice`},
		{name: "trailing data", body: `{"username":"alice"} junk`},
		{name: "second JSON value", body: `{"username":"alice"}{"username":"bob"}`},
		{name: "username is a number", body: `{"username": 42}`},
		{name: "username is true", body: `{"username": true}`},
		{name: "username is a non-empty array", body: `{"username": ["alice"]}`},
		{name: "username is a non-empty object", body: `{"username": {"name": "alice"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no Login call is expected; gomock fails the test otherwise
			h, _ := newLoginTestHandler(t)

			rr := postLogin(h, tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.JSONEq(t, `{"error":"Bad Request"}`, rr.Body.String())
		})
	}
}

func TestLogin_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "missing username",
			err:        service.ErrUsernameRequired,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "provider rejected participant",
			err:        fmt.Errorf("%w: %w", service.ErrParticipantNotAdded, errors.New("provider error: http 403")),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "room lookup failed",
			err:        fmt.Errorf("%w: %w", service.ErrRoomLookupFailed, errors.New("dial tcp: timeout")),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, authService := newLoginTestHandler(t)
			authService.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResponse{}, tt.err)

			rr := postLogin(h, `{"username":"alice"}`)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, http.StatusText(tt.wantStatus)), rr.Body.String())
			assert.NotContains(t, rr.Body.String(), "provider error")
		})
	}
}

func TestLogin_FalsyUsernameIsMissing(t *testing.T) {
	bodies := []string{
		`null`,
		`{}`,
		`{"username": null}`,
		`{"username": false}`,
		`{"username": 0}`,
		`{"username": 0.0}`,
		`{"username": ""}`,
		`{"username": []}`,
		`{"username": {}}`,
	}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			h, authService := newLoginTestHandler(t)
			authService.EXPECT().
				Login(gomock.Any(), models.LoginRequest{}).
				Return(models.LoginResponse{}, service.ErrUsernameRequired)

			rr := postLogin(h, body)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.JSONEq(t, `{"error":"Unauthorized"}`, rr.Body.String())
		})
	}
}

func TestLogin_TrailingWhitespaceAccepted(t *testing.T) {
	h, authService := newLoginTestHandler(t)
	authService.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Username: "alice"}).
		Return(models.LoginResponse{Token: "t", ConversationSID: "CH1"}, nil)

	rr := postLogin(h, "{\"username\":\"alice\"}\n\t ")

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestLogin_BodyTooLarge(t *testing.T) {
	h, _ := newLoginTestHandler(t)

	body := `{"username":"` + strings.Repeat("a", maxLoginBodySize) + `"}`
	rr := postLogin(h, body)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
