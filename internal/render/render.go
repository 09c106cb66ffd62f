// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render renders the site's HTML pages from embedded templates.
// Every page is paired with the base layout; requests carrying the
// X-Partial header get only the "content" block, which the editor uses to
// swap styles in place.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/checkout"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/middleware"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// partials are parsed into every page but are not pages themselves.
var partials = map[string]bool{
	"base.html":      true,
	"component.html": true,
}

// PageData holds everything passed to a page template.
type PageData struct {
	Title       string
	Description string
	Share       *ShareMeta
	Session     *session.Data
	CSRFToken   string
	SiteURL     string
	Data        map[string]any
	Flashes     []Flash
}

// ShareMeta fills the Open Graph tags of a page.
type ShareMeta struct {
	Title       string
	Description string
	SiteName    string
	ImageURL    string
	URL         string
}

// Flash is a one-time notice shown above the content.
type Flash struct {
	Type    string // success, error, warning, info
	Message string
}

// Renderer holds the parsed page templates.
type Renderer struct {
	templates map[string]*template.Template
	siteURL   string
}

func funcMap(devMode bool) template.FuncMap {
	return template.FuncMap{
		"isDev": func() bool { return devMode },
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"lira": checkout.Lira,
		"iso":  func(t time.Time) string { return t.UTC().Format(time.RFC3339) },
		"date": func(t time.Time) string { return t.Format("02.01.2006 15:04") },
		"seq": func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = i
			}
			return out
		},
		"pad2": func(n int) string { return fmt.Sprintf("%02d", n) },
	}
}

// New parses every embedded page template against the base layout.
// devMode loads Tailwind from its CDN instead of the compiled stylesheet.
func New(siteURL string, devMode bool) (*Renderer, error) {
	rn := &Renderer{
		templates: make(map[string]*template.Template),
		siteURL:   strings.TrimRight(siteURL, "/"),
	}

	entries, err := fs.ReadDir(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || partials[name] || !strings.HasSuffix(name, ".html") {
			continue
		}
		tmpl, err := template.New("base.html").Funcs(funcMap(devMode)).ParseFS(templateFS,
			"templates/base.html", "templates/component.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		rn.templates[strings.TrimSuffix(name, ".html")] = tmpl
	}
	return rn, nil
}

// Has reports whether a page template named name exists.
func (rn *Renderer) Has(name string) bool {
	_, ok := rn.templates[name]
	return ok
}

// Page renders name with status 200.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	rn.Status(w, r, http.StatusOK, name, data)
}

// Status renders name with the given status code. The output is buffered
// so a template error still produces a clean 500.
func (rn *Renderer) Status(w http.ResponseWriter, r *http.Request, status int, name string, data *PageData) {
	body, err := rn.Bytes(r, name, data)
	if err != nil {
		slog.ErrorContext(r.Context(), "render page failed", "template", name, "error", err)
		http.Error(w, "Bir hata oluştu", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// Bytes executes name for r and returns the markup. Used directly by
// callers that cache the result.
func (rn *Renderer) Bytes(r *http.Request, name string, data *PageData) ([]byte, error) {
	tmpl, ok := rn.templates[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}
	if data == nil {
		data = &PageData{}
	}
	data.CSRFToken = middleware.CSRFTokenFromCtx(r.Context())
	if data.Session == nil {
		data.Session = middleware.SessionFromCtx(r.Context())
	}
	if data.SiteURL == "" {
		data.SiteURL = rn.siteURL
	}

	exec := "base.html"
	if isPartial(r) {
		exec = "content"
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, exec, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func isPartial(r *http.Request) bool {
	return r.Header.Get("X-Partial") == "1"
}
