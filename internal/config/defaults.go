// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultPort             = 3000
	defaultTLSPort          = 443
	defaultTLSCertFile      = "tls-cert.pem"
	defaultTLSKeyFile       = "tls-key.pem"
	defaultRequestTimeout   = 30 * time.Second
	defaultConversationsURL = "https://conversations.twilio.com/v1"
	defaultProviderTimeout  = 15 * time.Second
	defaultPageSize         = 50
	defaultTokenTTL         = time.Hour
	defaultRoomName         = "My Room"
	defaultMQTTHost         = "localhost"
	defaultMQTTPort         = "1882"
	defaultCacheTTL         = 10 * time.Minute

	// MaxTokenTTL is the longest lifetime the provider accepts for an
	// access token.
	MaxTokenTTL = 24 * time.Hour
)

// defaultConfig returns the lowest-priority config layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Env: ProductionEnv,
		},
		Server: Server{
			Port:           defaultPort,
			TLSPort:        defaultTLSPort,
			TLSCertFile:    defaultTLSCertFile,
			TLSKeyFile:     defaultTLSKeyFile,
			RequestTimeout: defaultRequestTimeout,
		},
		Provider: Provider{
			ConversationsURL: defaultConversationsURL,
			RequestTimeout:   defaultProviderTimeout,
			PageSize:         defaultPageSize,
		},
		Token: Token{
			TTL: defaultTokenTTL,
		},
		Room: Room{
			Name: defaultRoomName,
		},
		Client: Client{
			MQTTHost: defaultMQTTHost,
			MQTTPort: defaultMQTTPort,
		},
		Cache: Cache{
			TTL: defaultCacheTTL,
		},
	}
}
