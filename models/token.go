// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// VideoGrant authorizes the bearer to join a single video room.
type VideoGrant struct {
	Room string `json:"room,omitempty"`
}

// ChatGrant authorizes the bearer to use a chat service.
type ChatGrant struct {
	ServiceSID string `json:"service_sid,omitempty"`
}

// Grants is the "grants" claim of a provider access token.
type Grants struct {
	Identity string      `json:"identity"`
	Video    *VideoGrant `json:"video,omitempty"`
	Chat     *ChatGrant  `json:"chat,omitempty"`
}

// AccessTokenClaims is the full claim set of a provider access token.
// It embeds [jwt.RegisteredClaims] for jti, iss, sub and exp.
type AccessTokenClaims struct {
	jwt.RegisteredClaims
	Grants Grants `json:"grants"`
}

// AccessToken is a minted and signed provider access token.
type AccessToken struct {
	// SignedString is the compact JWS form handed to the browser.
	SignedString string

	Identity  string
	ExpiresAt time.Time
	Grants    Grants
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t AccessToken) String() string {
	return t.SignedString
}
