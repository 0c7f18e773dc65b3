package service

import "errors"

// Enquiry pipeline failures. Validation failures are reported as
// *validation.Errors instead.
var (
	// ErrDuplicateEntry: an enquiry with this email is already stored.
	ErrDuplicateEntry = errors.New("an enquiry with this email already exists")
	// ErrProviderUnavailable: the email provider refused or failed the send.
	ErrProviderUnavailable = errors.New("email provider unavailable")
	// ErrMisconfiguredService: the service cannot accept enquiries until an
	// operator fixes its configuration.
	ErrMisconfiguredService = errors.New("enquiry service misconfigured")
)
