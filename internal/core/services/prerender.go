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

// Ensure PrerenderService implements the interface.
var _ driving.PrerenderService = (*PrerenderService)(nil)

// PrerenderService renders static routes into the SPA template.
type PrerenderService struct {
	store  driven.SiteStore
	urls   *seo.Builder
	graphs *jsonld.Builder
	visit  *markup.Visit
}

// NewPrerenderService creates a prerender service for the given settings.
func NewPrerenderService(store driven.SiteStore, settings *domain.AppSettings) *PrerenderService {
	urls := seo.NewBuilder(settings.Site, settings.SEO)
	practice := jsonld.DefaultPractice()
	return &PrerenderService{
		store:  store,
		urls:   urls,
		graphs: jsonld.NewBuilder(urls, settings.SEO, practice),
		visit:  visitBlock(settings.Site, practice),
	}
}

// Routes returns the deduplicated static routes.
func (s *PrerenderService) Routes(content *domain.Content) []domain.StaticRoute {
	return BuildRoutes(content)
}

// Render injects head metadata, the JSON-LD graph and the body markup of a
// route into a fresh copy of the template.
func (s *PrerenderService) Render(tmpl []byte, route *domain.StaticRoute) ([]byte, error) {
	doc, err := markup.Parse(tmpl)
	if err != nil {
		return nil, err
	}

	meta := s.urls.Meta(route)
	graph, err := jsonld.Marshal(s.graphs.Graph(route, meta))
	if err != nil {
		return nil, err
	}
	if err := doc.InjectHead(meta, graph); err != nil {
		return nil, err
	}

	body, err := markup.RenderBody(markup.NewBody(route, s.visit))
	if err != nil {
		return nil, err
	}
	if err := doc.ReplaceRoot(body); err != nil {
		return nil, err
	}

	return doc.Render()
}

// Generate reads dist/index.html once, then writes one document per route.
// The first failing route aborts the run.
func (s *PrerenderService) Generate(ctx context.Context, content *domain.Content) (*domain.StepResult, error) {
	logger.Section("Prerender")

	tmpl, err := s.store.ReadFile(TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrTemplateMissing, TemplatePath, err)
	}

	routes := s.Routes(content)
	result := &domain.StepResult{Step: domain.StepPrerender}
	for i := range routes {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		route := &routes[i]
		html, err := s.Render(tmpl, route)
		if err != nil {
			return result, fmt.Errorf("prerender %s: %w", route.Path, err)
		}

		out, err := writeOutput(s.store, domain.StepPrerender, routeOutputPath(route.Path), html)
		if err != nil {
			return result, err
		}
		result.Outputs = append(result.Outputs, out)
		result.Count++
	}

	logger.Info("pre-rendered static routes", "routes", result.Count)
	return result, nil
}

// visitBlock describes the practice contact block of rendered bodies.
func visitBlock(site domain.SiteSettings, practice jsonld.Practice) *markup.Visit {
	addr := practice.Address
	return &markup.Visit{
		Name:           site.BrandName,
		Street:         addr.StreetAddress,
		Locality:       fmt.Sprintf("%s, %s %s", addr.AddressLocality, addr.AddressRegion, addr.PostalCode),
		Phone:          displayPhone(site.Phone),
		PhoneHref:      template.URL("tel:" + site.Phone), //nolint:gosec // configured number
		DirectionsHref: template.URL(practice.MapURL),     //nolint:gosec // compiled-in URL
	}
}

// displayPhone formats a North American number as (323) 272-2388.
// Other numbers are returned unchanged.
func displayPhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) == 11 && d[0] == '1' {
		d = d[1:]
	}
	if len(d) != 10 {
		return phone
	}
	return fmt.Sprintf("(%s) %s-%s", d[:3], d[3:6], d[6:])
}
