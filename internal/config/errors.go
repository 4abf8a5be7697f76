package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidProviderConfigs indicates missing provider credentials or
	// unusable REST settings.
	ErrInvalidProviderConfigs = errors.New("invalid provider configuration")
	// ErrInvalidTokenConfigs indicates a token TTL outside (0, 24h].
	ErrInvalidTokenConfigs = errors.New("invalid token configuration")
	// ErrInvalidRoomConfigs indicates an empty room name.
	ErrInvalidRoomConfigs = errors.New("invalid room configuration")
	// ErrInvalidServerConfigs indicates production mode without a TLS
	// certificate or key file.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidCacheConfigs indicates an enabled cache with no TTL.
	ErrInvalidCacheConfigs = errors.New("invalid cache configuration")
)
