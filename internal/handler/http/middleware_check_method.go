// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/coffeetalk/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// Instead of chi's 405 it answers a known path with an unregistered method
// with a JSON 404, so callers cannot discover which methods a route has.
//
// Only exact pattern matches against [http.Request.URL.Path] are considered.
// Wildcard routes such as "/static/*" never match here, so a stray method on
// them is answered with 404 too.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			utils.WriteJSONError(w, http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
