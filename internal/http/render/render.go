// Package render executes the embedded HTML templates and carries flash
// messages between a redirect and the next rendered page.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"

	"budget/internal/auth"
	"budget/web"
)

// Page carries the fields the base template expects. Page-specific data
// structs embed it.
type Page struct {
	Title string
	User  *auth.Claims
	Flash *Flash
}

// NewPage assembles the common page data for a request: any pending flash
// message (popped) and the authenticated identity, when present.
func NewPage(w http.ResponseWriter, r *http.Request, title string) Page {
	p := Page{Title: title, Flash: PopFlash(w, r)}
	if claims, ok := auth.ClaimsFrom(r.Context()); ok {
		p.User = claims
	}

	return p
}

// Renderer holds one parsed template per page, each combined with the
// base layout.
type Renderer struct {
	pages map[string]*template.Template
}

func New() (*Renderer, error) {
	names, err := fs.Glob(web.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("globbing templates: %w", err)
	}

	pages := make(map[string]*template.Template, len(names))

	for _, name := range names {
		base := path.Base(name)
		if base == "base.html" {
			continue
		}

		t, err := template.ParseFS(web.TemplatesFS, "templates/base.html", name)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", base, err)
		}

		pages[base] = t
	}

	return &Renderer{pages: pages}, nil
}

// HTML renders the named page into the response. The template executes
// into a buffer first so a render failure yields a clean 500 instead of a
// half-written page.
func (rn *Renderer) HTML(w http.ResponseWriter, status int, page string, data any) {
	t, ok := rn.pages[page]
	if !ok {
		slog.Error("unknown template", "page", page)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		slog.Error("failed to render template", "page", page, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write response", "page", page, "error", err)
	}
}
