// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Env     string `json:"env"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress        string   `json:"http_address"`
		Port               int      `json:"port"`
		TLSPort            int      `json:"tls_port"`
		TLSCertFile        string   `json:"tls_cert_file"`
		TLSKeyFile         string   `json:"tls_key_file"`
		RequestTimeout     Duration `json:"request_timeout"`
		CORSAllowedOrigins []string `json:"cors_allowed_origins"`
	} `json:"server,omitempty"`

	Provider struct {
		AccountSID       string   `json:"account_sid"`
		APIKeySID        string   `json:"api_key_sid"`
		APIKeySecret     string   `json:"api_key_secret"`
		ConversationsURL string   `json:"conversations_url"`
		RequestTimeout   Duration `json:"request_timeout"`
		PageSize         int      `json:"page_size"`
	} `json:"provider,omitempty"`

	Token struct {
		TTL Duration `json:"ttl"`
	} `json:"token,omitempty"`

	Room struct {
		Name string `json:"name"`
	} `json:"room,omitempty"`

	Client struct {
		MQTTHost   string `json:"mqtt_host"`
		MQTTPort   string `json:"mqtt_port"`
		WebRTCHost string `json:"webrtc_host"`
		WebRTCPort string `json:"webrtc_port"`
	} `json:"client,omitempty"`

	Cache struct {
		RedisAddress  string   `json:"redis_address"`
		RedisPassword string   `json:"redis_password"`
		RedisDB       int      `json:"redis_db"`
		TTL           Duration `json:"ttl"`
	} `json:"cache,omitempty"`

	Workers struct {
		WarmupRoom bool `json:"warmup_room"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Env:     jsonCfg.App.Env,
			Version: jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:        jsonCfg.Server.HTTPAddress,
			Port:               jsonCfg.Server.Port,
			TLSPort:            jsonCfg.Server.TLSPort,
			TLSCertFile:        jsonCfg.Server.TLSCertFile,
			TLSKeyFile:         jsonCfg.Server.TLSKeyFile,
			RequestTimeout:     time.Duration(jsonCfg.Server.RequestTimeout),
			CORSAllowedOrigins: jsonCfg.Server.CORSAllowedOrigins,
		},
		Provider: Provider{
			AccountSID:       jsonCfg.Provider.AccountSID,
			APIKeySID:        jsonCfg.Provider.APIKeySID,
			APIKeySecret:     jsonCfg.Provider.APIKeySecret,
			ConversationsURL: jsonCfg.Provider.ConversationsURL,
			RequestTimeout:   time.Duration(jsonCfg.Provider.RequestTimeout),
			PageSize:         jsonCfg.Provider.PageSize,
		},
		Token: Token{
			TTL: time.Duration(jsonCfg.Token.TTL),
		},
		Room: Room{
			Name: jsonCfg.Room.Name,
		},
		Client: Client{
			MQTTHost:   jsonCfg.Client.MQTTHost,
			MQTTPort:   jsonCfg.Client.MQTTPort,
			WebRTCHost: jsonCfg.Client.WebRTCHost,
			WebRTCPort: jsonCfg.Client.WebRTCPort,
		},
		Cache: Cache{
			RedisAddress:  jsonCfg.Cache.RedisAddress,
			RedisPassword: jsonCfg.Cache.RedisPassword,
			RedisDB:       jsonCfg.Cache.RedisDB,
			TTL:           time.Duration(jsonCfg.Cache.TTL),
		},
		Workers: Workers{
			WarmupRoom: jsonCfg.Workers.WarmupRoom,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
