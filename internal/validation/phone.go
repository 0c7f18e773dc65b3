package validation

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// IsValidPhoneNumber reports whether value is a real, dialable number for some
// region. The number must be written in international form with a leading "+";
// no default region is assumed.
func IsValidPhoneNumber(value string) bool {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "+") {
		return false
	}
	num, err := phonenumbers.Parse(value, "")
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(num)
}

// PhoneRegion returns the ISO region code of a valid number, or "" when the
// number cannot be attributed to a region.
func PhoneRegion(value string) string {
	if !IsValidPhoneNumber(value) {
		return ""
	}
	num, err := phonenumbers.Parse(strings.TrimSpace(value), "")
	if err != nil {
		return ""
	}
	return phonenumbers.GetRegionCodeForNumber(num)
}
