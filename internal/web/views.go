package web

import (
	"github.com/nsara/website/internal/catalog"
	"github.com/nsara/website/internal/validation"
)

type HomeData struct {
	Featured   []catalog.Course
	Categories []catalog.Category
}

type CoursesData struct {
	Query      string
	Category   string
	Categories []catalog.Category
	Results    []catalog.Course
}

type CourseData struct {
	Course   catalog.Course
	Category catalog.Category
}

type EnquiryData struct {
	Form      *FormState
	Countries []string
	Messages  FieldMessages
}

// FieldMessages are handed to enquiry.js so the browser checks use the
// same wording as the server.
type FieldMessages struct {
	Name   string
	Email  string
	Mobile string
}

// NewEnquiryData wraps form with the country options.
func NewEnquiryData(form *FormState) EnquiryData {
	return EnquiryData{
		Form:      form,
		Countries: CountryOptions,
		Messages: FieldMessages{
			Name:   validation.MsgName,
			Email:  validation.MsgEmail,
			Mobile: validation.MsgMobile,
		},
	}
}
