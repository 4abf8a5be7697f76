// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	// Username becomes the identity of the issued access token and of the
	// conversation participant.
	Username string `json:"username" validate:"required"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	// Token is the signed access token.
	Token string `json:"token"`

	// ConversationSID identifies the conversation the user was added to.
	ConversationSID string `json:"conversation_sid"`
}
