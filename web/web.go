// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package web embeds the page templates and static assets served by the
// token server.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/MKhiriev/coffeetalk/models"
)

// Page template names.
const (
	PageIndex  = "index.html"
	PageOffice = "office.html"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// PageData is the value every page template is executed with.
type PageData struct {
	Env models.ClientEnv
}

// Pages holds the parsed page templates.
type Pages struct {
	templates *template.Template
}

// NewPages parses every embedded template.
func NewPages() (*Pages, error) {
	templates, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("error parsing page templates: %w", err)
	}

	return &Pages{templates: templates}, nil
}

// Render executes the page named name into w.
func (p *Pages) Render(w io.Writer, name string, data PageData) error {
	if err := p.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("error rendering page %s: %w", name, err)
	}

	return nil
}

// Static returns the embedded static assets rooted at the static directory.
func Static() fs.FS {
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}

	return static
}
