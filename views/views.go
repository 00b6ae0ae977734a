// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names accepted by Render
const (
	Index      = "index"
	AllLists   = "all_lists"
	List       = "list"
	UpdateItem = "update_item"
	NotFound   = "not_found"
	Error      = "error"
)

var pageNames = []string{Index, AllLists, List, UpdateItem, NotFound, Error}

// Funcs are the helpers available to every template
var Funcs = template.FuncMap{
	"ago":        humanize.Time,
	"plural":     english.Plural,
	"pathEscape": url.PathEscape,
}

// Renderer executes one template set per page, each being the shared
// layout plus that page's title and content blocks
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every embedded page
func New() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(Funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s page: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages}, nil
}

// Must is New that panics on a template error
func Must() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// Render writes page with the given status. Output is buffered so a
// template failure still produces a clean 500.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) {
	tmpl, ok := r.pages[page]
	if !ok {
		slog.Error("unknown page", "page", page)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		slog.Error("failed to render page", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write page", "page", page, "error", err)
	}
}
