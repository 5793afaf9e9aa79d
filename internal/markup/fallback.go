package markup

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
)

// CallToAction is the closing block of a fallback page.
type CallToAction struct {
	Heading     string
	Description string
	Text        string
	Href        template.URL
}

// FallbackPage is the view model of a standalone fallback document.
// Service pages use Intro through Steps; location pages use CityLabel
// through Testimonials.
type FallbackPage struct {
	Title       string
	Description string
	Canonical   string
	Schema      template.JS
	H1          string
	Subheading  string
	FAQs        []domain.FAQ
	Links       []Link
	CTA         CallToAction

	Intro    []string
	Callouts []string
	Benefits []string
	Steps    []string

	CityLabel    string
	Highlights   []string
	Services     []string
	Testimonials []domain.Testimonial
}

// NewCallToAction converts an authored call to action.
func NewCallToAction(cta domain.CallToAction) CallToAction {
	return CallToAction{
		Heading:     cta.Heading,
		Description: cta.Description,
		Text:        cta.PrimaryText,
		Href:        template.URL(cta.PrimaryHref), //nolint:gosec // authored href
	}
}

// RenderServiceFallback executes the service fallback template.
func RenderServiceFallback(page FallbackPage) ([]byte, error) {
	return renderFallback("fallback-service", page)
}

// RenderLocationFallback executes the location fallback template.
func RenderLocationFallback(page FallbackPage) ([]byte, error) {
	return renderFallback("fallback-location", page)
}

func renderFallback(name string, page FallbackPage) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, page); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
