package contact

import (
	"embed"
	"fmt"

	"github.com/aymerick/raymond"
)

//go:embed templates/*.hbs
var templateFS embed.FS

// Body is a rendered message body
type Body struct {
	HTML string
	Text string
}

// TemplateContext is the data passed to templates
type TemplateContext map[string]interface{}

// TemplateService renders the locally held message body with Handlebars.
// Templates are parsed once at construction.
type TemplateService struct {
	html *raymond.Template
	text *raymond.Template
}

// NewTemplateService parses the embedded contact templates
func NewTemplateService() (*TemplateService, error) {
	html, err := parseEmbedded("templates/contact.html.hbs")
	if err != nil {
		return nil, err
	}
	text, err := parseEmbedded("templates/contact.txt.hbs")
	if err != nil {
		return nil, err
	}
	return &TemplateService{html: html, text: text}, nil
}

func parseEmbedded(name string) (*raymond.Template, error) {
	content, err := templateFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("template not found: %s", name)
	}
	tmpl, err := raymond.Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	return tmpl, nil
}

// Render fills both bodies. The HTML body escapes submitted values.
func (ts *TemplateService) Render(ctx TemplateContext) (*Body, error) {
	html, err := ts.html.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to render html body: %w", err)
	}
	text, err := ts.text.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to render text body: %w", err)
	}
	return &Body{HTML: html, Text: text}, nil
}

// templateVariables are the names both the stored Mailgun template and the
// local templates expect.
func templateVariables(sub Submission, title string) TemplateContext {
	return TemplateContext{
		"name":    sub.Name,
		"email":   sub.Email,
		"message": sub.Message,
		"title":   title,
	}
}
