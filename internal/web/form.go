package web

import (
	"github.com/nsara/website/internal/validation"
)

// FormStatus is the lifecycle state of the enquiry form.
type FormStatus string

const (
	StatusIdle       FormStatus = "idle"
	StatusSubmitting FormStatus = "submitting"
	StatusSuccess    FormStatus = "success"
	StatusError      FormStatus = "error"
)

// FallbackMessage is shown when the server gave no usable message.
const FallbackMessage = "Something went wrong."

// CountryOptions are offered in the country select, in display order.
var CountryOptions = []string{
	"United States",
	"Canada",
	"United Kingdom",
	"Australia",
	"India",
	"United Arab Emirates",
	"Germany",
	"Other",
}

// FormState drives the server-rendered enquiry form.
//
//	idle -> submitting -> success | error
//
// Each POST starts from a fresh idle state. The edit -> idle transition
// only exists in the browser, in static/enquiry.js.
type FormState struct {
	Status      FormStatus
	Values      validation.EnquiryInput
	Message     string
	FieldErrors map[string][]string
}

func NewFormState() *FormState {
	return &FormState{Status: StatusIdle}
}

// Begin moves the form into submitting with the entered values.
// It returns false while a submission is already in flight.
func (f *FormState) Begin(values validation.EnquiryInput) bool {
	if f.Status == StatusSubmitting {
		return false
	}
	f.Status = StatusSubmitting
	f.Values = values
	f.Message = ""
	f.FieldErrors = nil
	return true
}

// Succeed clears every field and records the server's message.
func (f *FormState) Succeed(msg string) {
	f.Status = StatusSuccess
	f.Values = validation.EnquiryInput{}
	f.FieldErrors = nil
	f.Message = orFallback(msg)
}

// Fail keeps the entered values so the user can correct them.
func (f *FormState) Fail(msg string, fieldErrors map[string][]string) {
	f.Status = StatusError
	f.FieldErrors = fieldErrors
	f.Message = orFallback(msg)
}

// Submitting reports whether the submit control must be disabled.
func (f *FormState) Submitting() bool {
	return f.Status == StatusSubmitting
}

// FieldError returns the first message for a field, or "".
func (f *FormState) FieldError(field string) string {
	if msgs := f.FieldErrors[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

func orFallback(msg string) string {
	if msg == "" {
		return FallbackMessage
	}
	return msg
}
