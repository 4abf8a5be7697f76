// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/coffeetalk/internal/logger"
	"github.com/MKhiriev/coffeetalk/internal/utils"
	"github.com/MKhiriev/coffeetalk/web"
)

// page renders the named template with the client env for clientType.
// The page is rendered into a buffer so a template failure still yields a
// clean 500.
func (h *Handler) page(name, clientType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		data := web.PageData{Env: h.services.PageService.ClientEnv(r.Context(), clientType)}

		var buf bytes.Buffer
		if err := h.pages.Render(&buf, name, data); err != nil {
			log.Err(err).Str("func", "*Handler.page").Str("page", name).Msg("error rendering page")
			utils.WriteJSONError(w, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
