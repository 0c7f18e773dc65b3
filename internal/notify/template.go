package notify

import (
	"github.com/osteele/liquid"

	"github.com/nsara/website/internal/model"
	"github.com/nsara/website/internal/validation"
)

const htmlTemplate = `<h2>New Enquiry Received</h2>
<p>A new enquiry was submitted through the website. Reply to this email to answer the enquirer directly.</p>
<table cellpadding="6" style="border-collapse:collapse">
  <tr><td><strong>Name:</strong></td><td>{{ name | escape }}</td></tr>
  <tr><td><strong>Email:</strong></td><td>{{ email | escape }}</td></tr>
  <tr><td><strong>Mobile:</strong></td><td>{{ mobile | escape }}{% if region != "" %} ({{ region }}){% endif %}</td></tr>
  <tr><td><strong>Country:</strong></td><td>{{ country | escape }}</td></tr>
  <tr><td><strong>Reference:</strong></td><td>{{ id | escape }}</td></tr>
</table>`

const textTemplate = `New Enquiry Received

Name:      {{ name }}
Email:     {{ email }}
Mobile:    {{ mobile }}
Country:   {{ country }}
Reference: {{ id }}
`

// Renderer produces the fixed staff notification bodies.
type Renderer struct {
	html *liquid.Template
	text *liquid.Template
}

// NewRenderer parses the notification templates.
func NewRenderer() *Renderer {
	engine := liquid.NewEngine()
	return &Renderer{
		html: mustParse(engine, htmlTemplate),
		text: mustParse(engine, textTemplate),
	}
}

func mustParse(engine *liquid.Engine, src string) *liquid.Template {
	tpl, err := engine.ParseString(src)
	if err != nil {
		panic(err)
	}
	return tpl
}

// Subject returns the notification subject line.
func (r *Renderer) Subject(e *model.Enquiry) string {
	return "New Enquiry from " + e.Name
}

// HTML renders the HTML body. Every field is escaped.
func (r *Renderer) HTML(e *model.Enquiry) (string, error) {
	out, err := r.html.RenderString(bindings(e))
	if err != nil {
		return "", err
	}
	return out, nil
}

// Text renders the plain-text body.
func (r *Renderer) Text(e *model.Enquiry) (string, error) {
	out, err := r.text.RenderString(bindings(e))
	if err != nil {
		return "", err
	}
	return out, nil
}

func bindings(e *model.Enquiry) liquid.Bindings {
	return liquid.Bindings{
		"id":      e.ID,
		"name":    e.Name,
		"email":   e.Email,
		"mobile":  e.Mobile,
		"region":  validation.PhoneRegion(e.Mobile),
		"country": e.Country,
	}
}
