// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/coffeetalk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// RoomService maps room names to provider conversations.
type RoomService interface {
	// GetOrCreateRoom returns the conversation whose friendly name equals
	// name, creating it when none exists.
	GetOrCreateRoom(ctx context.Context, name string) (models.Room, error)

	// InvalidateRoom forgets any cached resolution of name.
	InvalidateRoom(ctx context.Context, name string) error
}

// AuthService admits users to the room and issues their access tokens.
type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
}

// PageService builds the values exposed to the rendered pages.
type PageService interface {
	ClientEnv(ctx context.Context, clientType string) models.ClientEnv
}
