package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nsara/website/internal/web"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Site    *Handler
	Enquiry *EnquiryHandler
	Courses *CourseHandler
	Pages   *PageHandler
}

// NewRouter wires the site's routes and middleware.
func NewRouter(hs Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeaders)

	// JSON API
	r.Route("/api", func(r chi.Router) {
		r.Use(hs.Site.CORS)
		r.Use(middleware.Timeout(15 * time.Second))
		r.Get("/health", hs.Site.Health)
		r.Post("/enquiry", hs.Enquiry.Submit)
		r.Get("/courses", hs.Courses.List)
		r.Get("/courses/{slug}", hs.Courses.Get)
	})

	// ページ
	r.Get("/", hs.Pages.Home)
	r.Get("/about", hs.Pages.About)
	r.Get("/contact", hs.Pages.Contact)
	r.Get("/courses", hs.Pages.Courses)
	r.Get("/courses/{slug}", hs.Pages.Course)
	r.Get("/enquiry", hs.Pages.EnquiryForm)
	r.Post("/enquiry", hs.Pages.SubmitEnquiry)

	r.Handle("/static/*", http.StripPrefix("/static/", web.Static()))
	r.NotFound(hs.Pages.NotFound)

	return r
}
