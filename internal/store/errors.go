// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by cache methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRoomNotCached is returned by RoomCache.Get on a cache miss.
	ErrRoomNotCached = errors.New("room is not cached")

	// ErrCacheUnavailable is returned when the cache backend cannot be
	// reached at startup.
	ErrCacheUnavailable = errors.New("room cache is unavailable")

	// ErrDecodingCachedRoom is returned when a cached value is not a valid
	// room document.
	ErrDecodingCachedRoom = errors.New("error decoding cached room")
)
