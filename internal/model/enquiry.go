package model

import "time"

// CountryNotSpecified is stored when the enquirer leaves the country blank.
const CountryNotSpecified = "Not specified"

// Enquiry represents a lead submitted via the enquiry form.
type Enquiry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"created_at"`
}
