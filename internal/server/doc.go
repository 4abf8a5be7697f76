// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP server of the token server.
//
// It serves plain HTTP or TLS depending on the deployment mode, and handles
// signal-driven graceful shutdown.
package server
