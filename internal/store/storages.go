// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/coffeetalk/internal/config"
	"github.com/MKhiriev/coffeetalk/internal/logger"
	goredis "github.com/redis/go-redis/v9"
)

// Storages groups the state backends used by the services.
type Storages struct {
	RoomCache RoomCache
}

// NewStorages builds the room cache selected by cfg. An empty
// cfg.RedisAddress yields the no-op cache; otherwise the Redis server is
// pinged once and [ErrCacheUnavailable] is returned when it does not answer.
func NewStorages(ctx context.Context, cfg config.Cache, log *logger.Logger) (*Storages, error) {
	if cfg.RedisAddress == "" {
		log.Info().Str("func", "NewStorages").Msg("room cache disabled")
		return &Storages{RoomCache: NewNopRoomCache()}, nil
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	log.Info().Str("func", "NewStorages").Str("address", cfg.RedisAddress).Msg("connected to redis successfully")

	return &Storages{RoomCache: NewRedisRoomCache(client, cfg.TTL, log)}, nil
}

// Close releases every backend held by s.
func (s *Storages) Close() error {
	return s.RoomCache.Close()
}
