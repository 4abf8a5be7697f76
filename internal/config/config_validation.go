// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the sentinel errors
// from errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Provider.AccountSID == "" || cfg.Provider.APIKeySID == "" || cfg.Provider.APIKeySecret == "" {
		return ErrInvalidProviderConfigs
	}

	if cfg.Provider.ConversationsURL == "" || cfg.Provider.RequestTimeout <= 0 || cfg.Provider.PageSize <= 0 {
		return ErrInvalidProviderConfigs
	}

	if cfg.Token.TTL <= 0 || cfg.Token.TTL > MaxTokenTTL {
		return ErrInvalidTokenConfigs
	}

	if cfg.Room.Name == "" {
		return ErrInvalidRoomConfigs
	}

	if cfg.TLSEnabled() && (cfg.Server.TLSCertFile == "" || cfg.Server.TLSKeyFile == "") {
		return ErrInvalidServerConfigs
	}

	if cfg.Cache.RedisAddress != "" && cfg.Cache.TTL <= 0 {
		return ErrInvalidCacheConfigs
	}

	return nil
}
