// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/coffeetalk/internal/logger"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

type httpServer struct {
	server *http.Server

	// tlsCertFile and tlsKeyFile are set only in production.
	tlsCertFile string
	tlsKeyFile  string

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, address, tlsCertFile, tlsKeyFile string, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		tlsCertFile: tlsCertFile,
		tlsKeyFile:  tlsKeyFile,
		logger:      logger,
	}
}

func (h *httpServer) tls() bool {
	return h.tlsCertFile != "" && h.tlsKeyFile != ""
}

// RunServer blocks until the server is shut down or fails to serve.
// A graceful shutdown is not reported as an error.
func (h *httpServer) RunServer() error {
	var err error
	if h.tls() {
		h.logger.Info().Str("address", h.server.Addr).Str("cert", h.tlsCertFile).Msg("serving HTTPS")
		err = h.server.ListenAndServeTLS(h.tlsCertFile, h.tlsKeyFile)
	} else {
		h.logger.Info().Str("address", h.server.Addr).Msg("serving HTTP")
		err = h.server.ListenAndServe()
	}

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
