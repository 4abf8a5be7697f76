// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/coffeetalk/internal/config"
	"github.com/MKhiriev/coffeetalk/internal/logger"
	"github.com/MKhiriev/coffeetalk/internal/utils"
	"github.com/MKhiriev/coffeetalk/models"
)

const (
	conversationsPath = "/Conversations"
	participantsPath  = "/Conversations/{conversationSID}/Participants"
)

type httpProviderAdapter struct {
	client   *utils.HTTPClient
	pageSize int

	logger *logger.Logger
}

// NewProviderAdapter constructs the REST implementation of [ProviderAdapter].
// It normalises and validates cfg.ConversationsURL and configures the
// underlying HTTP client with basic auth (API key SID and secret) and
// cfg.RequestTimeout.
//
// Returns an error if cfg.ConversationsURL is empty or cannot be parsed as a
// valid URL.
func NewProviderAdapter(cfg config.Provider, logger *logger.Logger) (ProviderAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ConversationsURL)
	if err != nil {
		return nil, fmt.Errorf("invalid conversations url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout).
		WithBasicAuth(cfg.APIKeySID, cfg.APIKeySecret)

	return &httpProviderAdapter{client: client, pageSize: cfg.PageSize, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// conversationResource is a conversation as returned by the REST API.
type conversationResource struct {
	SID            string    `json:"sid"`
	AccountSID     string    `json:"account_sid"`
	ChatServiceSID string    `json:"chat_service_sid"`
	FriendlyName   string    `json:"friendly_name"`
	State          string    `json:"state"`
	DateCreated    time.Time `json:"date_created"`
}

func (c conversationResource) toRoom() models.Room {
	return models.Room{
		SID:            c.SID,
		FriendlyName:   c.FriendlyName,
		ChatServiceSID: c.ChatServiceSID,
		AccountSID:     c.AccountSID,
		State:          c.State,
		CreatedAt:      c.DateCreated,
	}
}

// conversationsPage is one page of GET /Conversations.
type conversationsPage struct {
	Conversations []conversationResource `json:"conversations"`
	Meta          struct {
		NextPageURL string `json:"next_page_url"`
	} `json:"meta"`
}

type participantResource struct {
	SID             string `json:"sid"`
	ConversationSID string `json:"conversation_sid"`
	Identity        string `json:"identity"`
}

// ListConversations implements [ProviderAdapter]. It GETs /Conversations
// with the configured page size and keeps following meta.next_page_url,
// which the provider returns as an absolute URL, until it is empty.
func (h *httpProviderAdapter) ListConversations(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room

	next := conversationsPath
	seen := make(map[string]struct{})
	for next != "" {
		if _, ok := seen[next]; ok {
			return nil, fmt.Errorf("list conversations: pagination loop at %s", next)
		}
		seen[next] = struct{}{}

		req := h.client.R().SetContext(ctx)
		if next == conversationsPath {
			req.SetQueryParam("PageSize", strconv.Itoa(h.pageSize))
		}

		resp, err := req.Get(next)
		if err != nil {
			return nil, fmt.Errorf("list conversations request: %w", err)
		}
		if err = mapHTTPError(resp); err != nil {
			return nil, err
		}

		var page conversationsPage
		if err = json.Unmarshal(resp.Body(), &page); err != nil {
			return nil, fmt.Errorf("decode conversations page: %w", err)
		}

		for _, c := range page.Conversations {
			rooms = append(rooms, c.toRoom())
		}
		next = page.Meta.NextPageURL
	}

	h.logger.Debug().Int("conversations", len(rooms)).Msg("listed provider conversations")
	return rooms, nil
}

// CreateConversation implements [ProviderAdapter]. It POSTs FriendlyName as
// a form field to /Conversations.
func (h *httpProviderAdapter) CreateConversation(ctx context.Context, friendlyName string) (models.Room, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{"FriendlyName": friendlyName}).
		Post(conversationsPath)
	if err != nil {
		return models.Room{}, fmt.Errorf("create conversation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Room{}, err
	}

	var c conversationResource
	if err = json.Unmarshal(resp.Body(), &c); err != nil {
		return models.Room{}, fmt.Errorf("decode created conversation: %w", err)
	}

	h.logger.Info().
		Str("conversation_sid", c.SID).
		Str("friendly_name", c.FriendlyName).
		Msg("created provider conversation")
	return c.toRoom(), nil
}

// CreateParticipant implements [ProviderAdapter]. It POSTs Identity as a
// form field to /Conversations/{sid}/Participants.
func (h *httpProviderAdapter) CreateParticipant(ctx context.Context, conversationSID, identity string) (models.Participant, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("conversationSID", conversationSID).
		SetFormData(map[string]string{"Identity": identity}).
		Post(participantsPath)
	if err != nil {
		return models.Participant{}, fmt.Errorf("create participant request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Participant{}, err
	}

	var p participantResource
	if err = json.Unmarshal(resp.Body(), &p); err != nil {
		return models.Participant{}, fmt.Errorf("decode created participant: %w", err)
	}

	return models.Participant{
		SID:             p.SID,
		ConversationSID: p.ConversationSID,
		Identity:        p.Identity,
	}, nil
}
