// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/coffeetalk/internal/logger"
	"github.com/MKhiriev/coffeetalk/models"
	goredis "github.com/redis/go-redis/v9"
)

const roomKeyPrefix = "room:"

// redisClient is the subset of *goredis.Client used by the cache.
type redisClient interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
	Close() error
}

type redisRoomCache struct {
	client redisClient
	ttl    time.Duration
	logger *logger.Logger
}

// NewRedisRoomCache returns a RoomCache that stores rooms as JSON documents
// under "room:<name>" keys expiring after ttl.
func NewRedisRoomCache(client *goredis.Client, ttl time.Duration, log *logger.Logger) RoomCache {
	return newRedisRoomCache(client, ttl, log)
}

func newRedisRoomCache(client redisClient, ttl time.Duration, log *logger.Logger) *redisRoomCache {
	return &redisRoomCache{client: client, ttl: ttl, logger: log}
}

func roomKey(name string) string {
	return roomKeyPrefix + name
}

func (c *redisRoomCache) Get(ctx context.Context, name string) (models.Room, error) {
	data, err := c.client.Get(ctx, roomKey(name)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return models.Room{}, ErrRoomNotCached
	}
	if err != nil {
		return models.Room{}, fmt.Errorf("error reading cached room: %w", err)
	}

	var room models.Room
	if err = json.Unmarshal(data, &room); err != nil {
		return models.Room{}, fmt.Errorf("%w: %w", ErrDecodingCachedRoom, err)
	}

	return room, nil
}

func (c *redisRoomCache) Set(ctx context.Context, name string, room models.Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("error encoding room: %w", err)
	}

	if err = c.client.Set(ctx, roomKey(name), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("error caching room: %w", err)
	}

	c.logger.Debug().Str("room", name).Str("conversation_sid", room.SID).Msg("room cached")
	return nil
}

func (c *redisRoomCache) Delete(ctx context.Context, name string) error {
	if err := c.client.Del(ctx, roomKey(name)).Err(); err != nil {
		return fmt.Errorf("error deleting cached room: %w", err)
	}

	return nil
}

func (c *redisRoomCache) Close() error {
	return c.client.Close()
}
