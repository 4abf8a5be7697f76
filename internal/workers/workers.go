// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/coffeetalk/internal/config"
	"github.com/MKhiriev/coffeetalk/internal/logger"
	"github.com/MKhiriev/coffeetalk/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers registers the workers enabled in cfg.
func NewWorkers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Workers {
	ws := &Workers{}

	if cfg.Workers.WarmupRoom {
		ws.workers = append(ws.workers, NewRoomWarmupWorker(services.RoomService, cfg.Room.Name, cfg.Provider.RequestTimeout, logger))
	}

	logger.Info().Int("count", len(ws.workers)).Msg("workers created")
	return ws
}

// Run runs every registered worker in registration order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
