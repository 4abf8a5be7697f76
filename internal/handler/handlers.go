// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler assembles the transport handlers served by the token
// server.
package handler

import (
	"fmt"

	"github.com/MKhiriev/coffeetalk/internal/config"
	"github.com/MKhiriev/coffeetalk/internal/handler/http"
	"github.com/MKhiriev/coffeetalk/internal/logger"
	"github.com/MKhiriev/coffeetalk/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	httpHandler, err := http.NewHandler(services, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errHTTPHandlerNotCreated, err)
	}

	return &Handlers{HTTP: httpHandler}, nil
}
