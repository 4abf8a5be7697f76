// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/coffeetalk/internal/adapter"
	"github.com/MKhiriev/coffeetalk/internal/logger"
	"github.com/MKhiriev/coffeetalk/internal/store"
	"github.com/MKhiriev/coffeetalk/models"
)

// roomService is the concrete implementation of RoomService.
// It resolves rooms through the provider's conversation listing and keeps
// the result in a RoomCache.
type roomService struct {
	providerAdapter adapter.ProviderAdapter
	cache           store.RoomCache

	logger *logger.Logger
}

// NewRoomService constructs a RoomService backed by providerAdapter and
// cache. Pass store.NewNopRoomCache() to always ask the provider.
func NewRoomService(providerAdapter adapter.ProviderAdapter, cache store.RoomCache, logger *logger.Logger) RoomService {
	return &roomService{
		providerAdapter: providerAdapter,
		cache:           cache,
		logger:          logger,
	}
}

// GetOrCreateRoom returns the room named name.
//
// The cache is consulted first. On a miss every provider conversation is
// scanned and the first one whose friendly name equals name wins; when none
// matches a new conversation is created. Two concurrent first calls may
// both create a conversation; the provider does not enforce unique names.
// Cache failures are logged and never fail the lookup.
//
// Returns:
//   - ErrEmptyRoomName if name is empty.
//   - ErrRoomLookupFailed (wrapped) if listing conversations fails.
//   - ErrRoomCreationFailed (wrapped) if creating the conversation fails.
func (s *roomService) GetOrCreateRoom(ctx context.Context, name string) (models.Room, error) {
	log := logger.FromContext(ctx)

	if name == "" {
		return models.Room{}, ErrEmptyRoomName
	}

	room, err := s.cache.Get(ctx, name)
	if err == nil {
		return room, nil
	}
	if !errors.Is(err, store.ErrRoomNotCached) {
		log.Warn().Err(err).Str("room", name).Msg("room cache read failed")
	}

	rooms, err := s.providerAdapter.ListConversations(ctx)
	if err != nil {
		log.Err(err).Str("room", name).Msg("listing conversations ended with error")
		return models.Room{}, fmt.Errorf("%w: %w", ErrRoomLookupFailed, err)
	}

	room, found := findRoom(rooms, name)
	if !found {
		room, err = s.providerAdapter.CreateConversation(ctx, name)
		if err != nil {
			log.Err(err).Str("room", name).Msg("conversation creation ended with error")
			return models.Room{}, fmt.Errorf("%w: %w", ErrRoomCreationFailed, err)
		}
		log.Info().Str("room", name).Str("conversation_sid", room.SID).Msg("room created")
	}

	if err = s.cache.Set(ctx, name, room); err != nil {
		log.Warn().Err(err).Str("room", name).Msg("room cache write failed")
	}

	return room, nil
}

// InvalidateRoom drops the cached resolution of name.
func (s *roomService) InvalidateRoom(ctx context.Context, name string) error {
	if err := s.cache.Delete(ctx, name); err != nil {
		return fmt.Errorf("error invalidating room %q: %w", name, err)
	}

	return nil
}

func findRoom(rooms []models.Room, name string) (models.Room, bool) {
	for _, room := range rooms {
		if room.FriendlyName == name {
			return room, true
		}
	}

	return models.Room{}, false
}
