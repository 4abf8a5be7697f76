// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/coffeetalk/internal/adapter"
	"github.com/MKhiriev/coffeetalk/internal/config"
	"github.com/MKhiriev/coffeetalk/internal/logger"
	"github.com/MKhiriev/coffeetalk/internal/utils"
	"github.com/MKhiriev/coffeetalk/models"
)

// authService is the concrete implementation of AuthService.
// It joins users to the configured room and mints provider access tokens.
type authService struct {
	roomService     RoomService
	providerAdapter adapter.ProviderAdapter

	// roomName is the room every user joins; it is also the video room
	// granted in every token.
	roomName string

	accountSID   string
	apiKeySID    string
	apiKeySecret string

	// tokenTTL controls how long a newly issued access token remains valid.
	tokenTTL time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService. All state is read-only after
// construction, so the service is safe for concurrent use.
func NewAuthService(roomService RoomService, providerAdapter adapter.ProviderAdapter, cfg config.StructuredConfig, logger *logger.Logger) AuthService {
	return &authService{
		roomService:     roomService,
		providerAdapter: providerAdapter,
		roomName:        cfg.Room.Name,
		accountSID:      cfg.Provider.AccountSID,
		apiKeySID:       cfg.Provider.APIKeySID,
		apiKeySecret:    cfg.Provider.APIKeySecret,
		tokenTTL:        cfg.Token.TTL,
		logger:          logger,
	}
}

// Login adds req.Username to the room's conversation and issues an access
// token for it.
//
// A user who already is a participant (provider conflict) is admitted as if
// newly added. When the provider no longer knows the resolved conversation
// the cached room is invalidated and resolved once more.
//
// Returns the signed token with the conversation SID, or:
//   - ErrUsernameRequired if req.Username is empty.
//   - ErrRoomLookupFailed / ErrRoomCreationFailed (wrapped) from room resolution.
//   - ErrParticipantNotAdded (wrapped) for any other provider failure.
//   - ErrTokenNotIssued (wrapped) if signing fails.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" {
		return models.LoginResponse{}, ErrUsernameRequired
	}

	room, err := a.joinRoom(ctx, req.Username)
	if err != nil {
		return models.LoginResponse{}, err
	}

	grants := models.Grants{
		Identity: req.Username,
		Video:    &models.VideoGrant{Room: a.roomName},
		Chat:     &models.ChatGrant{ServiceSID: room.ChatServiceSID},
	}

	token, err := utils.GenerateAccessToken(a.accountSID, a.apiKeySID, a.apiKeySecret, grants, a.tokenTTL)
	if err != nil {
		log.Err(err).Str("identity", req.Username).Msg("access token generation ended with error")
		return models.LoginResponse{}, fmt.Errorf("%w: %w", ErrTokenNotIssued, err)
	}

	log.Info().
		Str("identity", req.Username).
		Str("conversation_sid", room.SID).
		Time("expires_at", token.ExpiresAt).
		Msg("access token issued")

	return models.LoginResponse{
		Token:           token.String(),
		ConversationSID: room.SID,
	}, nil
}

// joinRoom resolves the room and adds identity to it, retrying once with a
// fresh resolution when the conversation is gone.
func (a *authService) joinRoom(ctx context.Context, identity string) (models.Room, error) {
	log := logger.FromContext(ctx)

	room, err := a.roomService.GetOrCreateRoom(ctx, a.roomName)
	if err != nil {
		return models.Room{}, err
	}

	err = a.addParticipant(ctx, room, identity)
	switch {
	case err == nil:
		return room, nil
	case !errors.Is(err, adapter.ErrNotFound):
		return models.Room{}, err
	}

	log.Warn().Str("room", a.roomName).Str("conversation_sid", room.SID).Msg("conversation is gone, resolving room again")
	if err = a.roomService.InvalidateRoom(ctx, a.roomName); err != nil {
		log.Warn().Err(err).Str("room", a.roomName).Msg("room invalidation failed")
	}

	room, err = a.roomService.GetOrCreateRoom(ctx, a.roomName)
	if err != nil {
		return models.Room{}, err
	}

	if err = a.addParticipant(ctx, room, identity); err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			err = fmt.Errorf("%w: %w", ErrParticipantNotAdded, err)
		}
		return models.Room{}, err
	}

	return room, nil
}

func (a *authService) addParticipant(ctx context.Context, room models.Room, identity string) error {
	log := logger.FromContext(ctx)

	_, err := a.providerAdapter.CreateParticipant(ctx, room.SID, identity)
	switch {
	case err == nil:
		log.Debug().Str("identity", identity).Str("conversation_sid", room.SID).Msg("participant added")
		return nil
	case errors.Is(err, adapter.ErrConflict):
		log.Debug().Str("identity", identity).Str("conversation_sid", room.SID).Msg("participant already in conversation")
		return nil
	case errors.Is(err, adapter.ErrNotFound):
		return err
	default:
		log.Err(err).Str("identity", identity).Str("conversation_sid", room.SID).Msg("participant creation ended with error")
		return fmt.Errorf("%w: %w", ErrParticipantNotAdded, err)
	}
}
