// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models defines the domain types shared by every layer of the
// coffeetalk token server: provider rooms and participants, the login
// request/response pair, access token grants and the client environment
// handed to page templates.
package models
