package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/cors"

	"github.com/nsara/website/internal/repository"
)

// Handler serves the site-wide endpoints: health and CORS.
type Handler struct {
	db             repository.DB
	siteName       string
	allowedOrigins []string
}

// New creates a Handler. db may be nil when enquiries are not persisted.
func New(db repository.DB, siteName string, allowedOrigins []string) *Handler {
	return &Handler{db: db, siteName: siteName, allowedOrigins: allowedOrigins}
}

// CORS allows the configured origins to call the JSON API.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	})(next)
}

// writeJSON sends v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}
