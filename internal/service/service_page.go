// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"maps"

	"github.com/MKhiriev/coffeetalk/internal/config"
	"github.com/MKhiriev/coffeetalk/internal/logger"
	"github.com/MKhiriev/coffeetalk/models"
)

// Keys of the client environment handed to page templates.
const (
	ClientEnvKeyEnv        = "ENV"
	ClientEnvKeyMQTTHost   = "MQTT_HOST"
	ClientEnvKeyMQTTPort   = "MQTT_PORT"
	ClientEnvKeyWebRTCHost = "WEBRTC_HOST"
	ClientEnvKeyWebRTCPort = "WEBRTC_PORT"
	ClientEnvKeyClientType = "CLIENT_TYPE"
)

type pageService struct {
	// base holds the forwarded configuration values; empty values are
	// left out.
	base models.ClientEnv

	logger *logger.Logger
}

// NewPageService captures the forwarded configuration once at startup.
func NewPageService(cfg config.StructuredConfig, logger *logger.Logger) PageService {
	base := models.ClientEnv{}
	for key, value := range map[string]string{
		ClientEnvKeyEnv:        cfg.App.Env,
		ClientEnvKeyMQTTHost:   cfg.Client.MQTTHost,
		ClientEnvKeyMQTTPort:   cfg.Client.MQTTPort,
		ClientEnvKeyWebRTCHost: cfg.Client.WebRTCHost,
		ClientEnvKeyWebRTCPort: cfg.Client.WebRTCPort,
	} {
		if value != "" {
			base[key] = value
		}
	}

	return &pageService{base: base, logger: logger}
}

// ClientEnv returns a fresh copy of the forwarded values with CLIENT_TYPE set
// to clientType.
func (p *pageService) ClientEnv(ctx context.Context, clientType string) models.ClientEnv {
	env := maps.Clone(p.base)
	env[ClientEnvKeyClientType] = clientType
	return env
}
