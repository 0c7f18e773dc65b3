// Package web renders the public site: server-side HTML pages over a shared
// layout, the enquiry form state, and the embedded static assets.
package web

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
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Pages parsed at startup. Each one is rendered inside layout.html.
const (
	PageHome     = "home"
	PageAbout    = "about"
	PageContact  = "contact"
	PageCourses  = "courses"
	PageCourse   = "course"
	PageEnquiry  = "enquiry"
	PageNotFound = "not_found"
)

var pageNames = []string{
	PageHome, PageAbout, PageContact, PageCourses, PageCourse, PageEnquiry, PageNotFound,
}

// Site carries the institute details shown in the layout and contact page.
type Site struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// DefaultSite returns the institute's published contact details under name.
func DefaultSite(name string) Site {
	return Site{
		Name:    name,
		Email:   "info@nsara.institute",
		Phone:   "+971 56 549 9249",
		Address: "Office 211, Al-Zarooni Building, Al-Rigga, Deira, Dubai, UAE",
	}
}

// View is what every page template receives.
type View struct {
	Site  Site
	Title string
	Path  string
	Year  int
	Data  any
}

type Renderer struct {
	site  Site
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"join": strings.Join,
	"telHref": func(phone string) template.URL {
		return template.URL("tel:" + strings.ReplaceAll(phone, " ", ""))
	},
}

// NewRenderer parses every page template against the layout.
func NewRenderer(site Site) (*Renderer, error) {
	r := &Renderer{site: site, pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render writes page with the given status. The page is executed into a
// buffer first so a template error never leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, status int, page, title string, data any) {
	t, ok := r.pages[page]
	if !ok {
		slog.Error("unknown page template", "page", page)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	view := View{
		Site:  r.site,
		Title: title,
		Path:  req.URL.Path,
		Year:  time.Now().Year(),
		Data:  data,
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", view); err != nil {
		slog.Error("render page", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Static serves the embedded assets. Mount it under /static/ with the prefix stripped.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
