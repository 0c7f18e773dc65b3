package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nsara/website/internal/catalog"
	"github.com/nsara/website/internal/service"
	"github.com/nsara/website/internal/validation"
	"github.com/nsara/website/internal/web"
)

// PageHandler serves the server-rendered site.
type PageHandler struct {
	renderer       *web.Renderer
	catalog        *catalog.Catalog
	enquiryService service.EnquiryService
}

func NewPageHandler(renderer *web.Renderer, c *catalog.Catalog, enquiryService service.EnquiryService) *PageHandler {
	return &PageHandler{renderer: renderer, catalog: c, enquiryService: enquiryService}
}

func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, http.StatusOK, web.PageHome, "", web.HomeData{
		Featured:   h.catalog.Featured(),
		Categories: h.catalog.Categories(),
	})
}

func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, http.StatusOK, web.PageAbout, "About Us", nil)
}

func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, http.StatusOK, web.PageContact, "Contact Us", nil)
}

// Courses handles GET /courses. Supports query params: q, category.
func (h *PageHandler) Courses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	h.renderer.Render(w, r, http.StatusOK, web.PageCourses, "Courses", web.CoursesData{
		Query:      q,
		Category:   category,
		Categories: h.catalog.Categories(),
		Results:    h.catalog.Search(q, category),
	})
}

// Course handles GET /courses/{slug}.
func (h *PageHandler) Course(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	course, ok := h.catalog.FindBySlug(slug)
	if !ok {
		h.NotFound(w, r)
		return
	}
	cat, _ := h.catalog.CategoryOf(slug)
	h.renderer.Render(w, r, http.StatusOK, web.PageCourse, course.Title(), web.CourseData{
		Course:   course,
		Category: cat,
	})
}

func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, http.StatusNotFound, web.PageNotFound, "Page Not Found", nil)
}

// EnquiryForm handles GET /enquiry.
func (h *PageHandler) EnquiryForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, http.StatusOK, web.PageEnquiry, "Enquiry", web.NewEnquiryData(web.NewFormState()))
}

// SubmitEnquiry handles POST /enquiry, the no-JavaScript path of the form.
// It runs the same service as the JSON API and re-renders with the outcome.
func (h *PageHandler) SubmitEnquiry(w http.ResponseWriter, r *http.Request) {
	form := web.NewFormState()
	if err := r.ParseForm(); err != nil {
		form.Fail(MsgInvalidBody, nil)
		h.renderer.Render(w, r, http.StatusBadRequest, web.PageEnquiry, "Enquiry", web.NewEnquiryData(form))
		return
	}

	form.Begin(validation.EnquiryInput{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Mobile:  r.PostForm.Get("mobile"),
		Country: r.PostForm.Get("country"),
	})

	status := http.StatusOK
	if _, err := h.enquiryService.Submit(r.Context(), form.Values); err != nil {
		var body errorResponse
		status, body = errorStatus(r, err)
		var verrs *validation.Errors
		if errors.As(err, &verrs) {
			form.Fail(body.Error, verrs.FieldErrors)
		} else {
			form.Fail(body.Error, nil)
		}
	} else if h.enquiryService.Persists() {
		status = http.StatusCreated
		form.Succeed(MsgSaved)
	} else {
		form.Succeed(MsgSent)
	}

	h.renderer.Render(w, r, status, web.PageEnquiry, "Enquiry", web.NewEnquiryData(form))
}
