// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"time"

	"github.com/MKhiriev/coffeetalk/internal/config"
	"github.com/MKhiriev/coffeetalk/internal/logger"
	"github.com/MKhiriev/coffeetalk/internal/service"
	"github.com/MKhiriev/coffeetalk/internal/utils"
	"github.com/MKhiriev/coffeetalk/web"
)

// traceIDGenerator produces ids for requests that arrive without X-Trace-ID.
type traceIDGenerator interface {
	Generate() string
}

type Handler struct {
	services *service.Services
	pages    *web.Pages
	traceIDs traceIDGenerator

	requestTimeout     time.Duration
	corsAllowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handler, error) {
	pages, err := web.NewPages()
	if err != nil {
		return nil, fmt.Errorf("error creating http handler: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		pages:              pages,
		traceIDs:           utils.NewUUIDGenerator(),
		requestTimeout:     cfg.RequestTimeout,
		corsAllowedOrigins: cfg.CORSAllowedOrigins,
		logger:             logger,
	}, nil
}
