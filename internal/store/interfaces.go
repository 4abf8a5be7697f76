// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the optional state of the token server: a cache of
// resolved provider rooms keyed by room name.
//
// The server is stateless by default ([NewNopRoomCache]). Setting a Redis
// address switches to [NewRedisRoomCache] so that several instances share
// one resolved room and skip the provider's conversation listing.
package store

import (
	"context"

	"github.com/MKhiriev/coffeetalk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/room_cache_mock.go -package=mock

// RoomCache stores resolved rooms by friendly name.
type RoomCache interface {
	// Get returns the cached room for name or [ErrRoomNotCached] on a miss.
	Get(ctx context.Context, name string) (models.Room, error)

	// Set caches room under name.
	Set(ctx context.Context, name string, room models.Room) error

	// Delete drops the entry for name. Deleting a missing entry is not an error.
	Delete(ctx context.Context, name string) error

	// Close releases the underlying connection, if any.
	Close() error
}
