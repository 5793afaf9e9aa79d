package services

import (
	"fmt"
	"strings"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
	"github.com/exquisite-dentistry/sitegen/internal/core/ports/driving"
	"github.com/exquisite-dentistry/sitegen/internal/markup"
)

// Ensure QualityService implements the interface.
var _ driving.QualityService = (*QualityService)(nil)

// QualityService checks service and location content against the
// editorial thresholds in domain.QualitySettings.
type QualityService struct {
	limits domain.QualitySettings
}

// NewQualityService creates a quality checker.
func NewQualityService(limits domain.QualitySettings) *QualityService {
	return &QualityService{limits: limits}
}

// Check reports missing SEO fields and hero headings, too few or invalid
// internal links (errors) and thin copy (warnings).
func (s *QualityService) Check(content *domain.Content) *domain.QualityReport {
	report := &domain.QualityReport{}

	for _, slug := range content.ServiceSlugs() {
		cfg := content.Services[slug]
		s.checkRequired(report, "Service", slug, cfg.SEO, cfg.Hero.Heading)
		s.checkLinks(report, "Service", slug, cfg.InternalLinks, s.limits.MinServiceLinks)
		s.checkWords(report, "Service", slug, serviceText(&cfg))
	}

	for _, slug := range content.LocationSlugs() {
		cfg := content.Locations[slug]
		s.checkRequired(report, "Location", slug, cfg.SEO, cfg.Hero.Heading)
		s.checkLinks(report, "Location", slug, cfg.RelatedServices, s.limits.MinLocationLinks)
		s.checkWords(report, "Location", slug, locationText(&cfg))
	}

	return report
}

func (s *QualityService) checkRequired(report *domain.QualityReport, kind, slug string, fields domain.SEOFields, heading string) {
	if strings.TrimSpace(fields.Title) == "" {
		report.AddError(fmt.Sprintf("%s %q is missing seo.title.", kind, slug))
	}
	if strings.TrimSpace(fields.Description) == "" {
		report.AddError(fmt.Sprintf("%s %q is missing seo.description.", kind, slug))
	}
	if strings.TrimSpace(heading) == "" {
		report.AddError(fmt.Sprintf("%s %q is missing a hero heading.", kind, slug))
	}
}

// checkLinks reports a count shortfall alone; hrefs are only checked once
// the minimum is met.
func (s *QualityService) checkLinks(report *domain.QualityReport, kind, slug string, links []domain.Link, minLinks int) {
	if len(links) < minLinks {
		report.AddError(fmt.Sprintf("%s %q must define at least %d internal link(s).", kind, slug, minLinks))
		return
	}
	for _, link := range links {
		if !strings.HasPrefix(link.Href, "/") {
			report.AddError(fmt.Sprintf("%s %q has an invalid href (%s) for link %q.", kind, slug, link.Href, link.Label))
		}
	}
}

func (s *QualityService) checkWords(report *domain.QualityReport, kind, slug string, text []string) {
	if words := markup.WordCount(text...); words < s.limits.MinWords {
		report.AddWarn(fmt.Sprintf("%s \"/%s\" contains %d words (< %d).", kind, slug, words, s.limits.MinWords))
	}
}

// serviceText returns the body copy of a service page.
func serviceText(cfg *domain.ServicePageConfig) []string {
	text := []string{cfg.Hero.Subheading}
	text = append(text, cfg.Overview.Intro...)
	for _, c := range cfg.Overview.Callouts {
		text = append(text, c.Description)
	}
	for _, b := range cfg.Benefits {
		text = append(text, b.Description)
	}
	for _, step := range cfg.TreatmentSteps {
		text = append(text, step.Detail)
	}
	for _, faq := range cfg.FAQs {
		text = append(text, faq.Answer)
	}
	return append(text, cfg.CTA.Description)
}

// locationText returns the body copy of a location page.
func locationText(cfg *domain.LocationPageConfig) []string {
	text := []string{cfg.Hero.Subheading}
	text = append(text, cfg.NeighborhoodHighlights...)
	text = append(text, cfg.SignatureServices...)
	for _, t := range cfg.Testimonials {
		text = append(text, t.Quote)
	}
	for _, faq := range cfg.FAQs {
		text = append(text, faq.Answer)
	}
	return append(text, cfg.CTA.Description)
}
