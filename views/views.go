// Package views holds the embedded HTML templates and the renderer shared
// by all list handlers. Each page defines a "content" block rendered inside
// layout.html.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed *.html
var files embed.FS

var pages = []string{
	"index.html",
	"players.html",
	"tournaments.html",
	"registrations.html",
	"matches.html",
	"match_results.html",
	"leaderboards.html",
}

type Renderer struct {
	templates map[string]*template.Template
}

// New parses every page against the shared layout. Parse errors are
// programmer errors and fail startup.
func New() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.ParseFS(files, "layout.html", page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		templates[page] = t
	}
	return &Renderer{templates: templates}, nil
}

func (r *Renderer) Render(w io.Writer, page string, data interface{}) error {
	t, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("unknown template %q", page)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
