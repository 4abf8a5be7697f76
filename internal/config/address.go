// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strconv"

// ListenAddress resolves the address the HTTP server binds to.
// An explicit Server.HTTPAddress wins; otherwise production listens on
// all interfaces at TLSPort and every other environment at Port.
func (cfg *StructuredConfig) ListenAddress() string {
	if cfg.Server.HTTPAddress != "" {
		return cfg.Server.HTTPAddress
	}

	if cfg.App.IsProduction() {
		return ":" + strconv.Itoa(cfg.Server.TLSPort)
	}

	return ":" + strconv.Itoa(cfg.Server.Port)
}

// TLSEnabled reports whether the server must terminate TLS itself.
func (cfg *StructuredConfig) TLSEnabled() bool {
	return cfg.App.IsProduction()
}
