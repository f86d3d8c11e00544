/*
Package web holds the embedded HTML templates of the site and renders them.
*/
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page file names.
const (
	PageIndex  = "index.html"
	PageLogin  = "login.html"
	PageSignup = "signup.html"
)

// Page is the data passed to every template. Unused fields are left empty.
type Page struct {
	Title string

	// Name is the current user's name on the landing page, or the posted name on the signup form.
	Name  string
	Email string

	// Errors holds the messages listed above a form; handlers set at most one.
	Errors []string
}

// Renderer executes the site's pages, each wrapped in the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}

	for _, page := range []string{PageIndex, PageLogin, PageSignup} {
		tmpl, err := template.New(page).ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		r.pages[page] = tmpl
	}

	return r, nil
}

// Render writes page to w.
func (r *Renderer) Render(w io.Writer, page string, data Page) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}
