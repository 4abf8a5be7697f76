// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the token server.
//
// It exposes route wiring, the login endpoint, the page handlers and the
// middleware shared by all of them. Request tracing, access logging, CORS and
// request timeouts are handled here before requests are delegated to the
// service layer.
package http
