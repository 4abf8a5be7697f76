// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/coffeetalk/internal/logger"
	"github.com/MKhiriev/coffeetalk/internal/service"
)

// RoomWarmupWorker resolves the configured room once so the first login does
// not pay for the conversation lookup.
type RoomWarmupWorker struct {
	roomService service.RoomService
	roomName    string
	timeout     time.Duration

	logger *logger.Logger
}

func NewRoomWarmupWorker(roomService service.RoomService, roomName string, timeout time.Duration, logger *logger.Logger) *RoomWarmupWorker {
	return &RoomWarmupWorker{
		roomService: roomService,
		roomName:    roomName,
		timeout:     timeout,
		logger:      logger,
	}
}

func (r *RoomWarmupWorker) Run(ctx context.Context) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	ctx = r.logger.WithContext(ctx)

	room, err := r.roomService.GetOrCreateRoom(ctx, r.roomName)
	if err != nil {
		r.logger.Warn().Err(err).Str("func", "*RoomWarmupWorker.Run").Str("room", r.roomName).Msg("room warmup failed, the room will be resolved on first login")
		return
	}

	r.logger.Info().Str("room", r.roomName).Str("conversation_sid", room.SID).Msg("room warmed up")
}
