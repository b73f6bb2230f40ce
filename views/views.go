// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
)

// Page names
const (
	Index           = "index"
	Schedule        = "schedule"
	Checklist       = "checklist"
	ChecklistDetail = "checklist_detail"
	AIInterface     = "ai_interface"
)

//go:embed templates/*.html
var embedded embed.FS

var pages = []string{Index, Schedule, Checklist, ChecklistDetail, AIInterface}

// Renderer holds one parsed template set per page, each combined with the
// shared layout
type Renderer struct {
	templates map[string]*template.Template
}

// New parses the embedded templates
func New() (*Renderer, error) {
	return NewFromFS(embedded)
}

// NewFromFS parses templates/layout.html plus templates/<page>.html for every
// page from fsys
func NewFromFS(fsys fs.FS) (*Renderer, error) {
	funcs := template.FuncMap{
		"lines": func(s string) []string { return strings.Split(s, "\n") },
	}

	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(fsys,
			"templates/layout.html",
			"templates/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		r.templates[page] = tmpl
	}

	return r, nil
}

// Render executes a page into w. The page is rendered into a buffer first so
// a template error still produces a clean 500.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) {
	tmpl, ok := r.templates[page]
	if !ok {
		slog.Error("unknown template", "page", page)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		slog.Error("failed to render template", "page", page, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write page", "page", page, "error", err)
	}
}
