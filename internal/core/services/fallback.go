package services

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
	"github.com/exquisite-dentistry/sitegen/internal/core/ports/driven"
	"github.com/exquisite-dentistry/sitegen/internal/core/ports/driving"
	"github.com/exquisite-dentistry/sitegen/internal/jsonld"
	"github.com/exquisite-dentistry/sitegen/internal/logger"
	"github.com/exquisite-dentistry/sitegen/internal/markup"
	"github.com/exquisite-dentistry/sitegen/internal/seo"
)

// Ensure FallbackService implements the interface.
var _ driving.FallbackService = (*FallbackService)(nil)

// FallbackService writes standalone pages for routes outside the SPA router.
type FallbackService struct {
	store  driven.SiteStore
	urls   *seo.Builder
	graphs *jsonld.Builder
}

// NewFallbackService creates a fallback service for the given settings.
func NewFallbackService(store driven.SiteStore, settings *domain.AppSettings) *FallbackService {
	urls := seo.NewBuilder(settings.Site, settings.SEO)
	return &FallbackService{
		store:  store,
		urls:   urls,
		graphs: jsonld.NewBuilder(urls, settings.SEO, jsonld.DefaultPractice()),
	}
}

// RenderService builds and validates the fallback page of a service.
func (s *FallbackService) RenderService(cfg *domain.ServicePageConfig) ([]byte, error) {
	canonical := s.urls.Canonical("/" + cfg.Slug)
	schema, err := jsonld.Marshal(s.graphs.ServiceProcedure(cfg, canonical))
	if err != nil {
		return nil, err
	}

	page := s.page(cfg.SEO.Title, cfg.SEO.Description, canonical, schema)
	page.H1 = cfg.Hero.Heading
	page.Subheading = cfg.Hero.Subheading
	page.Intro = nonBlank(cfg.Overview.Intro...)
	page.Callouts = titledItems(cfg.Overview.Callouts)
	page.Benefits = titledItems(cfg.Benefits)
	for _, step := range cfg.TreatmentSteps {
		page.Steps = append(page.Steps, joinTitled(step.Title, step.Detail))
	}
	page.FAQs = cfg.FAQs
	page.Links = markup.Links(cfg.InternalLinks)
	page.CTA = markup.NewCallToAction(cfg.CTA)

	html, err := markup.RenderServiceFallback(page)
	if err != nil {
		return nil, fmt.Errorf("render fallback %s: %w", cfg.Slug, err)
	}
	if err := ValidateFallback(html, cfg.Slug); err != nil {
		return nil, err
	}
	return html, nil
}

// RenderLocation builds and validates the fallback page of a location.
func (s *FallbackService) RenderLocation(cfg *domain.LocationPageConfig) ([]byte, error) {
	canonical := s.urls.Canonical("/" + cfg.Slug)
	schema, err := jsonld.Marshal(s.graphs.LocationDentist(cfg, canonical))
	if err != nil {
		return nil, err
	}

	page := s.page(cfg.SEO.Title, cfg.SEO.Description, canonical, schema)
	page.H1 = cfg.Hero.Heading
	page.Subheading = cfg.Hero.Subheading
	page.CityLabel = cfg.CityLabel
	page.Highlights = cfg.NeighborhoodHighlights
	page.Services = cfg.SignatureServices
	page.Testimonials = cfg.Testimonials
	page.FAQs = cfg.FAQs
	page.Links = markup.Links(cfg.RelatedServices)
	page.CTA = markup.NewCallToAction(cfg.CTA)

	html, err := markup.RenderLocationFallback(page)
	if err != nil {
		return nil, fmt.Errorf("render fallback %s: %w", cfg.Slug, err)
	}
	if err := ValidateFallback(html, cfg.Slug); err != nil {
		return nil, err
	}
	return html, nil
}

// Generate writes public/<slug>.html for every service, then every location.
// The first invalid page aborts the run.
func (s *FallbackService) Generate(ctx context.Context, content *domain.Content) (*domain.StepResult, error) {
	logger.Section("Fallbacks")
	result := &domain.StepResult{Step: domain.StepFallbacks}

	write := func(slug string, html []byte) error {
		out, err := writeOutput(s.store, domain.StepFallbacks, PublicDir+"/"+slug+".html", html)
		if err != nil {
			return err
		}
		result.Outputs = append(result.Outputs, out)
		result.Count++
		return nil
	}

	for _, slug := range content.ServiceSlugs() {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		cfg := content.Services[slug]
		html, err := s.RenderService(&cfg)
		if err != nil {
			return result, err
		}
		if err := write(slug, html); err != nil {
			return result, err
		}
	}

	for _, slug := range content.LocationSlugs() {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		cfg := content.Locations[slug]
		html, err := s.RenderLocation(&cfg)
		if err != nil {
			return result, err
		}
		if err := write(slug, html); err != nil {
			return result, err
		}
	}

	logger.Info("generated fallback pages", "files", result.Count)
	return result, nil
}

func (s *FallbackService) page(title, description, canonical string, schema []byte) markup.FallbackPage {
	return markup.FallbackPage{
		Title:       s.urls.Title(title),
		Description: s.urls.Description(description),
		Canonical:   canonical,
		Schema:      template.JS(schema), //nolint:gosec // produced by encoding/json
	}
}

// fallbackChecks are the markers every fallback page must contain.
var fallbackChecks = []struct {
	marker  string
	problem string
}{
	{"<h1", "is missing an <h1>"},
	{`meta name="description"`, "lacks a meta description"},
	{`rel="canonical"`, "lacks a canonical tag"},
	{"application/ld+json", "is missing schema"},
}

// ValidateFallback checks a generated page for its h1, meta description,
// canonical link and JSON-LD script. Failures wrap domain.ErrFallbackInvalid.
func ValidateFallback(html []byte, slug string) error {
	doc := string(html)
	for _, check := range fallbackChecks {
		if !strings.Contains(doc, check.marker) {
			return fmt.Errorf("%w: Generated HTML for %s %s.", domain.ErrFallbackInvalid, slug, check.problem)
		}
	}
	return nil
}
