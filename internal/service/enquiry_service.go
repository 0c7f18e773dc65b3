package service

import (
	"context"

	"github.com/nsara/website/internal/model"
	"github.com/nsara/website/internal/validation"
)

// EnquiryService defines the business logic for enquiry submissions.
type EnquiryService interface {
	// Submit validates in and hands the resulting enquiry to the configured
	// sinks exactly once. Errors are *validation.Errors, ErrDuplicateEntry,
	// ErrProviderUnavailable, ErrMisconfiguredService, or an unclassified
	// server error.
	Submit(ctx context.Context, in validation.EnquiryInput) (*model.Enquiry, error)

	// Persists reports whether accepted enquiries are stored in the database.
	Persists() bool
}
