// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// providerErrorBody is the JSON error document returned by the provider.
type providerErrorBody struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	MoreInfo string `json:"more_info"`
	Status   int    `json:"status"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	perr := &ProviderError{
		Status: resp.StatusCode(),
		err:    sentinelFromStatus(resp.StatusCode()),
	}

	var body providerErrorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		perr.Code = body.Code
		perr.Message = body.Message
		perr.MoreInfo = body.MoreInfo
	}
	if perr.Message == "" {
		perr.Message = strings.TrimSpace(string(resp.Body()))
	}
	if perr.Message == "" {
		perr.Message = http.StatusText(resp.StatusCode())
	}

	return perr
}

func sentinelFromStatus(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusTooManyRequests:
		return ErrTooManyRequests
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	default:
		return ErrUnexpectedStatus
	}
}
