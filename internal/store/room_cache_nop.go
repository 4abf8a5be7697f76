// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/coffeetalk/models"
)

type nopRoomCache struct{}

// NewNopRoomCache returns a RoomCache that never stores anything, so every
// lookup goes to the provider.
func NewNopRoomCache() RoomCache {
	return nopRoomCache{}
}

func (nopRoomCache) Get(context.Context, string) (models.Room, error) {
	return models.Room{}, ErrRoomNotCached
}

func (nopRoomCache) Set(context.Context, string, models.Room) error {
	return nil
}

func (nopRoomCache) Delete(context.Context, string) error {
	return nil
}

func (nopRoomCache) Close() error {
	return nil
}
