// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/coffeetalk/internal/config"
	"github.com/MKhiriev/coffeetalk/internal/handler"
	"github.com/MKhiriev/coffeetalk/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer builds the HTTP server on cfg.ListenAddress(). In production the
// server terminates TLS with the configured certificate pair.
func NewServer(handlers *handler.Handlers, cfg config.StructuredConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoHTTPHandler
	}

	var certFile, keyFile string
	if cfg.TLSEnabled() {
		certFile, keyFile = cfg.Server.TLSCertFile, cfg.Server.TLSKeyFile
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg.ListenAddress(), certFile, keyFile, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() error {
	if err := s.run(context.Background()); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
		return err
	}

	return nil
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves until parent is done, a stop signal arrives or the listener
// fails.
func (s *server) run(parent context.Context) error {
	ctx, stop := signal.NotifyContext(
		parent,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("%w: %w", errServeFailed, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.Shutdown()
	if err := <-serveErr; err != nil {
		return fmt.Errorf("%w: %w", errServeFailed, err)
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}
