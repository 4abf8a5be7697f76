// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the token server: resolving
// the room, admitting users to it and building page data.
package service

import (
	"github.com/MKhiriev/coffeetalk/internal/adapter"
	"github.com/MKhiriev/coffeetalk/internal/config"
	"github.com/MKhiriev/coffeetalk/internal/logger"
	"github.com/MKhiriev/coffeetalk/internal/store"
)

type Services struct {
	RoomService RoomService
	AuthService AuthService
	PageService PageService
}

func NewServices(providerAdapter adapter.ProviderAdapter, storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	roomService := NewRoomService(providerAdapter, storages.RoomCache, logger)
	authService := NewAuthValidationService().Wrap(NewAuthService(roomService, providerAdapter, cfg, logger))

	return &Services{
		RoomService: roomService,
		AuthService: authService,
		PageService: NewPageService(cfg, logger),
	}
}
