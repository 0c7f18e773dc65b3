package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nsara/website/internal/catalog"
)

// CourseHandler exposes the catalog as JSON.
type CourseHandler struct {
	catalog *catalog.Catalog
}

func NewCourseHandler(c *catalog.Catalog) *CourseHandler {
	return &CourseHandler{catalog: c}
}

type courseListResponse struct {
	Courses []catalog.Course `json:"courses"`
}

type courseResponse struct {
	Course   catalog.Course `json:"course"`
	Category string         `json:"category"`
}

// List handles GET /api/courses. Supports query params: q, category.
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	q, category := r.URL.Query().Get("q"), r.URL.Query().Get("category")
	var courses []catalog.Course
	if q == "" && category == "" {
		courses = h.catalog.All()
	} else {
		courses = h.catalog.Search(q, category)
	}
	// Return [] not null for empty lists
	if courses == nil {
		courses = []catalog.Course{}
	}
	writeJSON(w, http.StatusOK, courseListResponse{Courses: courses})
}

// Get handles GET /api/courses/{slug}.
func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	course, ok := h.catalog.FindBySlug(slug)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Course not found."})
		return
	}
	cat, _ := h.catalog.CategoryOf(slug)
	writeJSON(w, http.StatusOK, courseResponse{Course: course, Category: cat.Slug})
}
