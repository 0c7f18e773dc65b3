package validation

import (
	"sort"
	"strings"
)

// Errors is the flattened result of a failed validation: messages that apply
// to the whole input, and messages keyed by the JSON name of the field.
type Errors struct {
	FormErrors  []string            `json:"formErrors"`
	FieldErrors map[string][]string `json:"fieldErrors"`
}

func newErrors() *Errors {
	return &Errors{
		FormErrors:  []string{},
		FieldErrors: make(map[string][]string),
	}
}

func (e *Errors) add(field, msg string) {
	e.FieldErrors[field] = append(e.FieldErrors[field], msg)
}

// Has reports whether field has at least one error.
func (e *Errors) Has(field string) bool {
	return len(e.FieldErrors[field]) > 0
}

// First returns the first message recorded for field, or "".
func (e *Errors) First(field string) string {
	if msgs := e.FieldErrors[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

func (e *Errors) Error() string {
	fields := make([]string, 0, len(e.FieldErrors))
	for f := range e.FieldErrors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}
