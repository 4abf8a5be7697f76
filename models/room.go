// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Room is a provider conversation that users are joined to.
//
// FriendlyName is the human-readable room name looked up by the server;
// ChatServiceSID is granted in every chat grant issued for the room.
type Room struct {
	SID            string    `json:"sid"`
	FriendlyName   string    `json:"friendly_name"`
	ChatServiceSID string    `json:"chat_service_sid"`
	AccountSID     string    `json:"account_sid"`
	State          string    `json:"state"`
	CreatedAt      time.Time `json:"date_created"`
}

// Participant is a membership of an identity in a provider conversation.
type Participant struct {
	SID             string `json:"sid"`
	ConversationSID string `json:"conversation_sid"`
	Identity        string `json:"identity"`
}
