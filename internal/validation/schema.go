// Package validation holds the canonical enquiry schema. The same rules back
// the JSON endpoint and the server-rendered form; the server always re-runs
// them regardless of what the browser reported.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nsara/website/internal/model"
)

// EnquiryInput is the raw shape accepted from a client.
type EnquiryInput struct {
	Name    string `json:"name" validate:"min=2"`
	Email   string `json:"email" validate:"email"`
	Mobile  string `json:"mobile" validate:"phone"`
	Country string `json:"country,omitempty"`
}

// Field messages shown to the enquirer.
const (
	MsgName   = "Name must be at least 2 characters."
	MsgEmail  = "Please enter a valid email address."
	MsgMobile = "Please enter a valid phone number."
)

var fieldMessages = map[string]string{
	"name":   MsgName,
	"email":  MsgEmail,
	"mobile": MsgMobile,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return IsValidPhoneNumber(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks in against the enquiry schema. The input is accepted or
// rejected as a whole: on failure the returned error is always *Errors and the
// Enquiry is the zero value.
func Validate(in EnquiryInput) (model.Enquiry, error) {
	err := validate.Struct(in)
	if err == nil {
		return model.Enquiry{
			Name:    in.Name,
			Email:   in.Email,
			Mobile:  in.Mobile,
			Country: in.Country,
		}, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verrs := newErrors()
		verrs.FormErrors = append(verrs.FormErrors, "Invalid input.")
		return model.Enquiry{}, verrs
	}

	verrs := newErrors()
	for _, fe := range fieldErrs {
		msg, ok := fieldMessages[fe.Field()]
		if !ok {
			msg = "Invalid value."
		}
		verrs.add(fe.Field(), msg)
	}
	return model.Enquiry{}, verrs
}
