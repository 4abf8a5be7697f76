// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client of the communications provider's
// Conversations REST API.
//
// The primary abstraction is [ProviderAdapter], which decouples the service
// layer from the provider's wire format. The package ships a resty-based
// implementation ([NewProviderAdapter]).
//
// Non-2xx responses are mapped by mapHTTPError to a [*ProviderError] that
// unwraps to one of the sentinel values defined in errors.go, so callers can
// use [errors.Is] (e.g. [ErrConflict] for 409, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/coffeetalk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/provider_adapter_mock.go -package=mock

// ProviderAdapter defines the conversation operations the server needs from
// the communications provider.
type ProviderAdapter interface {
	// ListConversations returns every conversation of the account, following
	// the provider's pagination until the last page.
	ListConversations(ctx context.Context) ([]models.Room, error)

	// CreateConversation creates a conversation with the given friendly name
	// and returns it. The provider does not enforce unique friendly names.
	CreateConversation(ctx context.Context, friendlyName string) (models.Room, error)

	// CreateParticipant adds identity to the conversation. Returns an error
	// wrapping [ErrConflict] when identity is already a participant and
	// [ErrNotFound] when the conversation does not exist.
	CreateParticipant(ctx context.Context, conversationSID, identity string) (models.Participant, error)
}
