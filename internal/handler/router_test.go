package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsara/website/internal/catalog"
	"github.com/nsara/website/internal/model"
	"github.com/nsara/website/internal/repository"
	"github.com/nsara/website/internal/service"
	"github.com/nsara/website/internal/web"
)

// memoryEnquiryRepository enforces the unique email constraint in memory.
type memoryEnquiryRepository struct {
	mu   sync.Mutex
	rows map[string]*model.Enquiry
}

func (m *memoryEnquiryRepository) Save(ctx context.Context, e *model.Enquiry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rows == nil {
		m.rows = make(map[string]*model.Enquiry)
	}
	if _, ok := m.rows[e.Email]; ok {
		return repository.ErrDuplicate
	}
	e.CreatedAt = time.Now().UTC()
	cp := *e
	m.rows[e.Email] = &cp
	return nil
}

func newTestRouter(t *testing.T, repo repository.EnquiryRepository) http.Handler {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	r, err := web.NewRenderer(web.DefaultSite("N.SARA Training Institute"))
	require.NoError(t, err)

	svc := service.NewEnquiryService(repo, nil)
	return NewRouter(Handlers{
		Site:    New(&mockDB{}, "N.SARA Training Institute", []string{"http://localhost:8080"}),
		Enquiry: NewEnquiryHandler(svc),
		Courses: NewCourseHandler(c),
		Pages:   NewPageHandler(r, c, svc),
	})
}

func TestRouter_EnquiryEndToEnd(t *testing.T) {
	repo := &memoryEnquiryRepository{}
	router := newTestRouter(t, repo)

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/enquiry", strings.NewReader(janeJSON))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	first := send()
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())
	assert.NotEmpty(t, first.Header().Get("X-Content-Type-Options"))

	var resp struct {
		Message string        `json:"message"`
		Data    model.Enquiry `json:"data"`
	}
	require.NoError(t, json.NewDecoder(first.Body).Decode(&resp))
	assert.Equal(t, MsgSaved, resp.Message)
	assert.Equal(t, "Jane Doe", resp.Data.Name)
	assert.Equal(t, "United States", resp.Data.Country)
	assert.NotEmpty(t, resp.Data.ID)
	assert.False(t, resp.Data.CreatedAt.IsZero())

	second := send()
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Contains(t, second.Body.String(), MsgDuplicate)
	assert.Len(t, repo.rows, 1)
}

func TestRouter_EnquiryInvalidNoRow(t *testing.T) {
	repo := &memoryEnquiryRepository{}
	router := newTestRouter(t, repo)

	req := httptest.NewRequest(http.MethodPost, "/api/enquiry",
		strings.NewReader(`{"name":"J","email":"nope","mobile":"123"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.rows)
}

func TestRouter_Courses(t *testing.T) {
	router := newTestRouter(t, &memoryEnquiryRepository{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/courses/autocad", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var got courseResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "autocad", got.Course.Slug)
	assert.Equal(t, "engineering-design", got.Category)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/courses/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/courses?q=zzzz-no-match", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"courses":[]}`, rec.Body.String())
}

func TestRouter_CoursesListWithoutFilters(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)
	router := newTestRouter(t, &memoryEnquiryRepository{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/courses", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Courses []catalog.Course `json:"courses"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	all := c.All()
	require.Len(t, got.Courses, len(all))
	for i := range all {
		assert.Equal(t, all[i].Slug, got.Courses[i].Slug)
	}
}

func TestRouter_Pages(t *testing.T) {
	router := newTestRouter(t, &memoryEnquiryRepository{})

	tests := []struct {
		path   string
		status int
		want   string
	}{
		{"/", http.StatusOK, "Featured courses"},
		{"/about", http.StatusOK, "About N.SARA Training Institute"},
		{"/contact", http.StatusOK, "info@nsara.institute"},
		{"/courses?category=healthcare-life-sciences", http.StatusOK, "Medical Coding"},
		{"/courses/data-science", http.StatusOK, "Data Science Professional"},
		{"/courses/unknown-course", http.StatusNotFound, "Page not found"},
		{"/enquiry", http.StatusOK, "Submit Enquiry"},
		{"/no-such-page", http.StatusNotFound, "Page not found"},
		{"/static/enquiry.js", http.StatusOK, "/api/enquiry"},
		{"/api/health", http.StatusOK, `"status":"ok"`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}
