// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/coffeetalk/models"
	"github.com/MKhiriev/coffeetalk/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)

	if len(h.corsAllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.corsAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", traceIDHeader},
			ExposedHeaders: []string{traceIDHeader},
			MaxAge:         300,
		}))
	}
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// pages
	router.Get("/", h.page(web.PageIndex, models.ClientTypeHome))
	router.Get("/office", h.page(web.PageOffice, models.ClientTypeOffice))
	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(web.Static())))

	// token
	router.Post("/login", h.login)

	router.Get("/healthz", h.health)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
