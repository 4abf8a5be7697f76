// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/coffeetalk/models"
	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenContentType is the "cty" header value the provider requires on
// every access token.
const AccessTokenContentType = "twilio-fpa;v=1"

// GenerateAccessToken creates a provider access token signed with HMAC-SHA256.
//
// The token layout follows the provider's documented format:
//   - header  cty: AccessTokenContentType
//   - jti:    "<apiKeySID>-<unix seconds>"
//   - iss:    the API key SID
//   - sub:    the account SID
//   - exp:    now plus ttl
//   - grants: identity plus the video and chat grants
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	grants := models.Grants{
//	    Identity: "alice",
//	    Video:    &models.VideoGrant{Room: "My Room"},
//	    Chat:     &models.ChatGrant{ServiceSID: "IS123"},
//	}
//	token, err := utils.GenerateAccessToken("AC123", "SK123", "secret", grants, time.Hour)
func GenerateAccessToken(accountSID, apiKeySID, apiKeySecret string, grants models.Grants, ttl time.Duration) (models.AccessToken, error) {
	if accountSID == "" || apiKeySID == "" || apiKeySecret == "" || grants.Identity == "" || ttl <= 0 {
		return models.AccessToken{}, errors.New("invalid params for generating access token")
	}

	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := &models.AccessTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        apiKeySID + "-" + strconv.FormatInt(now.Unix(), 10),
			Issuer:    apiKeySID,
			Subject:   accountSID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Grants: grants,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token.Header["cty"] = AccessTokenContentType

	tokenString, err := token.SignedString([]byte(apiKeySecret))
	if err != nil {
		return models.AccessToken{}, fmt.Errorf("error occurred during signing access token: %w", err)
	}

	return models.AccessToken{
		SignedString: tokenString,
		Identity:     grants.Identity,
		ExpiresAt:    claims.ExpiresAt.Time,
		Grants:       grants,
	}, nil
}

// ParseAccessToken verifies the signature and expiry of an access token and
// returns its claims.
//
// The API key SID is checked against the iss claim and the content type
// header must equal AccessTokenContentType.
func ParseAccessToken(tokenString, apiKeySID, apiKeySecret string) (*models.AccessTokenClaims, error) {
	claims := &models.AccessTokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(apiKeySecret), nil
	}, jwt.WithIssuer(apiKeySID), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("error occurred validating and parsing access token: %w", err)
	}

	if cty, _ := token.Header["cty"].(string); cty != AccessTokenContentType {
		return nil, fmt.Errorf("unexpected access token content type %q", cty)
	}

	if claims.Grants.Identity == "" {
		return nil, errors.New("empty identity error")
	}

	return claims, nil
}
