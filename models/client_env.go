// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Client types passed to page templates as CLIENT_TYPE.
const (
	ClientTypeHome   = "home"
	ClientTypeOffice = "office"
)

// ClientEnv is the set of configuration values exposed to the browser.
// Keys follow the environment variable names the front-end expects
// (ENV, MQTT_HOST, MQTT_PORT, WEBRTC_HOST, WEBRTC_PORT, CLIENT_TYPE).
type ClientEnv map[string]string

// Get returns the value stored under key or an empty string.
func (e ClientEnv) Get(key string) string {
	return e[key]
}
