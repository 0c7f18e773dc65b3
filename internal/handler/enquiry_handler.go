package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/nsara/website/internal/model"
	"github.com/nsara/website/internal/service"
	"github.com/nsara/website/internal/validation"
)

// maxEnquiryBody caps the JSON body; a real enquiry is a few hundred bytes.
const maxEnquiryBody = 64 << 10

// Client-facing messages for POST /api/enquiry.
const (
	MsgInvalidBody   = "Invalid request body."
	MsgInvalidInput  = "Invalid input."
	MsgDuplicate     = "An enquiry with this email already exists."
	MsgProviderDown  = "We could not send your enquiry right now. Please try again later."
	MsgMisconfigured = "Enquiry service is not configured. Please contact us directly."
	MsgInternal      = "An internal server error occurred."
	MsgSaved         = "Enquiry submitted successfully!"
	MsgSent          = "Thank you! Your enquiry has been sent."
)

// EnquiryHandler handles enquiry submissions from the JSON API.
type EnquiryHandler struct {
	enquiryService service.EnquiryService
}

// NewEnquiryHandler creates an EnquiryHandler with the given service.
func NewEnquiryHandler(enquiryService service.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{enquiryService: enquiryService}
}

type submitResponse struct {
	Message string         `json:"message"`
	Data    *model.Enquiry `json:"data,omitempty"`
}

// Submit handles POST /api/enquiry.
func (h *EnquiryHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in validation.EnquiryInput
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEnquiryBody)).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: MsgInvalidBody})
		return
	}

	e, err := h.enquiryService.Submit(r.Context(), in)
	if err != nil {
		status, body := errorStatus(r, err)
		writeJSON(w, status, body)
		return
	}

	if !h.enquiryService.Persists() {
		writeJSON(w, http.StatusOK, submitResponse{Message: MsgSent})
		return
	}
	writeJSON(w, http.StatusCreated, submitResponse{Message: MsgSaved, Data: e})
}

// errorStatus maps a Submit error to a status and client body. Server-side
// causes are logged here and never leak into the response.
func errorStatus(r *http.Request, err error) (int, errorResponse) {
	var verrs *validation.Errors
	switch {
	case errors.As(err, &verrs):
		return http.StatusBadRequest, errorResponse{Error: MsgInvalidInput, Details: verrs}
	case errors.Is(err, service.ErrDuplicateEntry):
		return http.StatusConflict, errorResponse{Error: MsgDuplicate}
	case errors.Is(err, service.ErrProviderUnavailable):
		slog.Error("enquiry email failed", "request_id", middleware.GetReqID(r.Context()), "error", err)
		return http.StatusInternalServerError, errorResponse{Error: MsgProviderDown}
	case errors.Is(err, service.ErrMisconfiguredService):
		slog.Error("enquiry service misconfigured", "request_id", middleware.GetReqID(r.Context()), "error", err)
		return http.StatusInternalServerError, errorResponse{Error: MsgMisconfigured}
	default:
		slog.Error("enquiry submit failed", "request_id", middleware.GetReqID(r.Context()), "error", err)
		return http.StatusInternalServerError, errorResponse{Error: MsgInternal}
	}
}
