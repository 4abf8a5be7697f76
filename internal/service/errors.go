// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrUsernameRequired    = errors.New("username is required")

	ErrEmptyRoomName      = errors.New("room name is empty")
	ErrRoomLookupFailed   = errors.New("room lookup failed")
	ErrRoomCreationFailed = errors.New("room creation failed")

	ErrParticipantNotAdded = errors.New("participant was not added")
	ErrTokenNotIssued      = errors.New("access token was not issued")
)
