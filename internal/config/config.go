// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// ProductionEnv is the value of App.Env that switches the server to TLS mode.
const ProductionEnv = "production"

// StructuredConfig is the top-level configuration container for the
// coffeetalk token server. It aggregates all sub-configurations and is
// populated by merging defaults, environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds deployment-level settings.
	App App

	// Server holds listen addresses, TLS files and timeouts of the HTTP server.
	Server Server

	// Provider holds the communications platform credentials and REST
	// endpoint settings.
	Provider Provider `envPrefix:"TWILIO_"`

	// Token holds access token minting parameters.
	Token Token `envPrefix:"TOKEN_"`

	// Room holds the fixed room every user is joined to.
	Room Room `envPrefix:"ROOM_"`

	// Client holds values forwarded to the rendered pages.
	Client Client

	// Cache holds the optional room cache backend settings.
	Cache Cache `envPrefix:"CACHE_"`

	// Workers holds configuration for startup workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds deployment-level configuration values.
type App struct {
	// Env selects the deployment mode. "production" serves TLS with the
	// configured certificate pair, anything else serves plain HTTP.
	// Env: ENV
	Env string `env:"ENV"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"APP_VERSION"`
}

// IsProduction reports whether the server runs in production (TLS) mode.
func (a App) IsProduction() bool {
	return a.Env == ProductionEnv
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress overrides the derived listen address when set,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`

	// Port is the plain HTTP port used outside production.
	// Env: PORT
	Port int `env:"PORT"`

	// TLSPort is the port used in production.
	// Env: SERVER_TLS_PORT
	TLSPort int `env:"SERVER_TLS_PORT"`

	// TLSCertFile is the PEM certificate used in production.
	// Env: SERVER_TLS_CERT_FILE
	TLSCertFile string `env:"SERVER_TLS_CERT_FILE"`

	// TLSKeyFile is the PEM private key used in production.
	// Env: SERVER_TLS_KEY_FILE
	TLSKeyFile string `env:"SERVER_TLS_KEY_FILE"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT"`

	// CORSAllowedOrigins enables CORS for the listed origins. Empty disables it.
	// Env: SERVER_CORS_ALLOWED_ORIGINS (comma separated)
	CORSAllowedOrigins []string `env:"SERVER_CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// Provider holds the credentials and REST settings of the communications
// platform.
type Provider struct {
	// AccountSID identifies the provider account; it is the "sub" claim of
	// every issued access token.
	// Env: TWILIO_ACCOUNT_SID
	AccountSID string `env:"ACCOUNT_SID"`

	// APIKeySID is the API key used for REST basic auth and as the access
	// token issuer.
	// Env: TWILIO_API_KEY_SID
	APIKeySID string `env:"API_KEY_SID"`

	// APIKeySecret signs access tokens and authenticates REST calls.
	// Must be kept confidential.
	// Env: TWILIO_API_KEY_SECRET
	APIKeySecret string `env:"API_KEY_SECRET"`

	// ConversationsURL is the base URL of the Conversations REST API.
	// Env: TWILIO_CONVERSATIONS_URL
	ConversationsURL string `env:"CONVERSATIONS_URL"`

	// RequestTimeout bounds every outbound provider call.
	// Env: TWILIO_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PageSize is the page size requested when listing conversations.
	// Env: TWILIO_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`
}

// Token holds access token parameters.
type Token struct {
	// TTL is how long an issued access token stays valid.
	// Env: TOKEN_TTL
	TTL time.Duration `env:"TTL"`
}

// Room holds the room every user joins.
type Room struct {
	// Name is the friendly name of the provider conversation and the name of
	// the video room granted in every token.
	// Env: ROOM_NAME
	Name string `env:"NAME"`
}

// Client holds values passed to the front-end through the page templates.
type Client struct {
	// Env: MQTT_HOST
	MQTTHost string `env:"MQTT_HOST"`
	// Env: MQTT_PORT
	MQTTPort string `env:"MQTT_PORT"`
	// Env: WEBRTC_HOST
	WebRTCHost string `env:"WEBRTC_HOST"`
	// Env: WEBRTC_PORT
	WebRTCPort string `env:"WEBRTC_PORT"`
}

// Cache holds the optional room cache settings. An empty RedisAddress
// disables caching.
type Cache struct {
	// Env: CACHE_REDIS_ADDRESS
	RedisAddress string `env:"REDIS_ADDRESS"`
	// Env: CACHE_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`
	// Env: CACHE_REDIS_DB
	RedisDB int `env:"REDIS_DB"`
	// TTL is how long a resolved room stays cached.
	// Env: CACHE_TTL
	TTL time.Duration `env:"TTL"`
}

// Workers holds configuration for startup workers.
type Workers struct {
	// WarmupRoom resolves the configured room once at startup.
	// Env: WORKERS_WARMUP_ROOM
	WarmupRoom bool `env:"WARMUP_ROOM"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables (after loading ENV_FILE, if set)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
