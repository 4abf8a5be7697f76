// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/coffeetalk/internal/adapter"
	"github.com/MKhiriev/coffeetalk/internal/logger"
	"github.com/MKhiriev/coffeetalk/internal/mock"
	"github.com/MKhiriev/coffeetalk/internal/store"
	"github.com/MKhiriev/coffeetalk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestRoomSvc is a helper that builds roomService with mocks.
func newTestRoomSvc(t *testing.T, ctrl *gomock.Controller) (*roomService, *mock.MockProviderAdapter, *mock.MockRoomCache) {
	t.Helper()
	mockAdapter := mock.NewMockProviderAdapter(ctrl)
	mockCache := mock.NewMockRoomCache(ctrl)

	svc := NewRoomService(mockAdapter, mockCache, logger.Nop()).(*roomService)
	return svc, mockAdapter, mockCache
}

// ── GetOrCreateRoom ──────────────────────────────────────────────────────────

func TestRoomService_GetOrCreateRoom_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockCache := newTestRoomSvc(t, ctrl)
	ctx := context.Background()
	cached := models.Room{SID: "CH1", FriendlyName: "My Room"}

	mockCache.EXPECT().Get(ctx, "My Room").Return(cached, nil)

	room, err := svc.GetOrCreateRoom(ctx, "My Room")

	require.NoError(t, err)
	assert.Equal(t, cached, room)
}

func TestRoomService_GetOrCreateRoom_FindsExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache := newTestRoomSvc(t, ctrl)
	ctx := context.Background()
	existing := models.Room{SID: "CH2", FriendlyName: "My Room", ChatServiceSID: "IS1"}

	gomock.InOrder(
		mockCache.EXPECT().Get(ctx, "My Room").Return(models.Room{}, store.ErrRoomNotCached),
		mockAdapter.EXPECT().ListConversations(ctx).Return([]models.Room{
			{SID: "CH1", FriendlyName: "Other"},
			existing,
			{SID: "CH3", FriendlyName: "My Room"},
		}, nil),
		mockCache.EXPECT().Set(ctx, "My Room", existing).Return(nil),
	)
	mockAdapter.EXPECT().CreateConversation(gomock.Any(), gomock.Any()).Times(0)

	room, err := svc.GetOrCreateRoom(ctx, "My Room")

	require.NoError(t, err)
	assert.Equal(t, existing, room)
}

func TestRoomService_GetOrCreateRoom_CreatesWhenAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache := newTestRoomSvc(t, ctrl)
	ctx := context.Background()
	created := models.Room{SID: "CH9", FriendlyName: "My Room", ChatServiceSID: "IS9"}

	gomock.InOrder(
		mockCache.EXPECT().Get(ctx, "My Room").Return(models.Room{}, store.ErrRoomNotCached),
		mockAdapter.EXPECT().ListConversations(ctx).Return([]models.Room{{SID: "CH1", FriendlyName: "my room"}}, nil),
		mockAdapter.EXPECT().CreateConversation(ctx, "My Room").Return(created, nil),
		mockCache.EXPECT().Set(ctx, "My Room", created).Return(nil),
	)

	room, err := svc.GetOrCreateRoom(ctx, "My Room")

	require.NoError(t, err)
	assert.Equal(t, created, room)
}

func TestRoomService_GetOrCreateRoom_CacheFailuresAreIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache := newTestRoomSvc(t, ctrl)
	ctx := context.Background()
	existing := models.Room{SID: "CH1", FriendlyName: "My Room"}

	mockCache.EXPECT().Get(ctx, "My Room").Return(models.Room{}, errors.New("redis down"))
	mockAdapter.EXPECT().ListConversations(ctx).Return([]models.Room{existing}, nil)
	mockCache.EXPECT().Set(ctx, "My Room", existing).Return(errors.New("redis down"))

	room, err := svc.GetOrCreateRoom(ctx, "My Room")

	require.NoError(t, err)
	assert.Equal(t, existing, room)
}

func TestRoomService_GetOrCreateRoom_ListFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache := newTestRoomSvc(t, ctrl)
	ctx := context.Background()

	mockCache.EXPECT().Get(ctx, "My Room").Return(models.Room{}, store.ErrRoomNotCached)
	mockAdapter.EXPECT().ListConversations(ctx).Return(nil, adapter.ErrUnauthorized)
	mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.GetOrCreateRoom(ctx, "My Room")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRoomLookupFailed)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestRoomService_GetOrCreateRoom_CreateFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache := newTestRoomSvc(t, ctrl)
	ctx := context.Background()

	mockCache.EXPECT().Get(ctx, "My Room").Return(models.Room{}, store.ErrRoomNotCached)
	mockAdapter.EXPECT().ListConversations(ctx).Return(nil, nil)
	mockAdapter.EXPECT().CreateConversation(ctx, "My Room").Return(models.Room{}, adapter.ErrInternalServerError)

	_, err := svc.GetOrCreateRoom(ctx, "My Room")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRoomCreationFailed)
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
}

func TestRoomService_GetOrCreateRoom_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestRoomSvc(t, ctrl)

	_, err := svc.GetOrCreateRoom(context.Background(), "")

	assert.ErrorIs(t, err, ErrEmptyRoomName)
}

// ── InvalidateRoom ───────────────────────────────────────────────────────────

func TestRoomService_InvalidateRoom(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockCache := newTestRoomSvc(t, ctrl)
	ctx := context.Background()

	mockCache.EXPECT().Delete(ctx, "My Room").Return(nil)
	require.NoError(t, svc.InvalidateRoom(ctx, "My Room"))

	mockCache.EXPECT().Delete(ctx, "My Room").Return(assert.AnError)
	assert.ErrorIs(t, svc.InvalidateRoom(ctx, "My Room"), assert.AnError)
}

// ── nop cache integration ────────────────────────────────────────────────────

func TestRoomService_WithNopCache_AlwaysAsksProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockProviderAdapter(ctrl)
	svc := NewRoomService(mockAdapter, store.NewNopRoomCache(), logger.Nop())
	ctx := context.Background()
	existing := models.Room{SID: "CH1", FriendlyName: "My Room"}

	mockAdapter.EXPECT().ListConversations(ctx).Return([]models.Room{existing}, nil).Times(2)

	for range 2 {
		room, err := svc.GetOrCreateRoom(ctx, "My Room")
		require.NoError(t, err)
		assert.Equal(t, "CH1", room.SID)
	}
}
