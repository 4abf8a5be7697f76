// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-env deployment environment ("production" enables TLS)
//	-port plain HTTP port used outside production
//	-tls-cert TLS certificate file
//	-tls-key TLS private key file
//	-c/-config json file path with configs
//	-account-sid provider account SID
//	-api-key-sid provider API key SID
//	-api-key-secret provider API key secret
//	-room room name
//	-token-ttl access token lifetime (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-mqtt-host MQTT broker host exposed to pages
//	-mqtt-port MQTT broker port exposed to pages
//	-redis-address room cache redis address
//	-warmup-room resolve the room at startup
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var environment string
	var port int
	var tlsCert, tlsKey string
	var jsonConfigPath string
	var accountSID, apiKeySID, apiKeySecret string
	var roomName string
	var tokenTTL time.Duration
	var requestTimeout time.Duration
	var mqttHost, mqttPort string
	var redisAddress string
	var warmupRoom bool

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&environment, "env", "", "Deployment environment")
	flag.IntVar(&port, "port", 0, "Plain HTTP port")
	flag.StringVar(&tlsCert, "tls-cert", "", "TLS certificate file")
	flag.StringVar(&tlsKey, "tls-key", "", "TLS private key file")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&accountSID, "account-sid", "", "Provider account SID")
	flag.StringVar(&apiKeySID, "api-key-sid", "", "Provider API key SID")
	flag.StringVar(&apiKeySecret, "api-key-secret", "", "Provider API key secret")
	flag.StringVar(&roomName, "room", "", "Room name")
	flag.DurationVar(&tokenTTL, "token-ttl", 0, "Access token lifetime (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&mqttHost, "mqtt-host", "", "MQTT broker host exposed to pages")
	flag.StringVar(&mqttPort, "mqtt-port", "", "MQTT broker port exposed to pages")
	flag.StringVar(&redisAddress, "redis-address", "", "Room cache redis address")
	flag.BoolVar(&warmupRoom, "warmup-room", false, "Resolve the room at startup")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Env: environment,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			Port:           port,
			TLSCertFile:    tlsCert,
			TLSKeyFile:     tlsKey,
			RequestTimeout: requestTimeout,
		},
		Provider: Provider{
			AccountSID:   accountSID,
			APIKeySID:    apiKeySID,
			APIKeySecret: apiKeySecret,
		},
		Token: Token{
			TTL: tokenTTL,
		},
		Room: Room{
			Name: roomName,
		},
		Client: Client{
			MQTTHost: mqttHost,
			MQTTPort: mqttPort,
		},
		Cache: Cache{
			RedisAddress: redisAddress,
		},
		Workers: Workers{
			WarmupRoom: warmupRoom,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
