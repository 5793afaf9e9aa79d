package services

import (
	"context"
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
	"github.com/exquisite-dentistry/sitegen/internal/core/ports/driven"
	"github.com/exquisite-dentistry/sitegen/internal/core/ports/driving"
	"github.com/exquisite-dentistry/sitegen/internal/logger"
	"github.com/exquisite-dentistry/sitegen/internal/seo"
)

// Ensure SitemapService implements the interface.
var _ driving.SitemapService = (*SitemapService)(nil)

const (
	sitemapFile  = "sitemap.xml"
	sitemapXMLNS = "http://www.sitemaps.org/schemas/sitemap/0.9"
	dateLayout   = "2006-01-02"
)

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// SitemapService writes the XML sitemap of every static route.
type SitemapService struct {
	store driven.SiteStore
	urls  *seo.Builder
	now   func() time.Time
}

// NewSitemapService creates a sitemap service.
func NewSitemapService(store driven.SiteStore, settings *domain.AppSettings) *SitemapService {
	return &SitemapService{
		store: store,
		urls:  seo.NewBuilder(settings.Site, settings.SEO),
		now:   time.Now,
	}
}

// Build encodes one <url> per static route, in route order.
func (s *SitemapService) Build(content *domain.Content) ([]byte, error) {
	today := s.now().UTC().Format(dateLayout)

	routes := BuildRoutes(content)
	set := urlSet{XMLNS: sitemapXMLNS, URLs: make([]sitemapURL, 0, len(routes))}
	for i := range routes {
		route := &routes[i]
		changefreq, priority := sitemapRank(route)

		lastmod := today
		if route.BlogPost != nil {
			if d, ok := parsePostDate(route.BlogPost.Date); ok {
				lastmod = d.Format(dateLayout)
			}
		}

		set.URLs = append(set.URLs, sitemapURL{
			Loc:        s.urls.Canonical(route.Path),
			LastMod:    lastmod,
			ChangeFreq: changefreq,
			Priority:   strconv.FormatFloat(priority, 'f', 1, 64),
		})
	}

	data, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	out := append([]byte(xml.Header), data...)
	return append(out, '\n'), nil
}

// Generate writes public/sitemap.xml and, when dist/ exists, dist/sitemap.xml.
func (s *SitemapService) Generate(ctx context.Context, content *domain.Content) (*domain.StepResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Section("Sitemap")
	data, err := s.Build(content)
	if err != nil {
		return nil, err
	}

	outputs, err := writePublicAndDist(s.store, domain.StepSitemap, sitemapFile, data)
	if err != nil {
		return nil, err
	}

	count := len(BuildRoutes(content))
	logger.Info("sitemap generated", "urls", count)
	return &domain.StepResult{Step: domain.StepSitemap, Count: count, Outputs: outputs}, nil
}

// postDateLayouts are the accepted spellings of a blog post date.
var postDateLayouts = []string{dateLayout, "January 2, 2006", "Jan 2, 2006"}

func parsePostDate(value string) (time.Time, bool) {
	for _, layout := range postDateLayouts {
		if d, err := time.Parse(layout, value); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// sitemapRank returns the change frequency and priority of a route.
func sitemapRank(route *domain.StaticRoute) (string, float64) {
	switch {
	case domain.HrefKey(route.Path) == "/":
		return "weekly", 1.0
	case route.Kind == domain.RouteKindService:
		return "monthly", 0.9
	case route.Kind == domain.RouteKindBlog, route.Kind == domain.RouteKindStory:
		return "monthly", 0.7
	default:
		return "monthly", 0.8
	}
}
