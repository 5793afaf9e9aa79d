package seo

import "github.com/exquisite-dentistry/sitegen/internal/core/domain"

// Open Graph and Twitter constants.
const (
	OGTypeWebsite = "website"
	OGTypeArticle = "article"
	TwitterCard   = "summary_large_image"
)

// Meta is the complete set of managed head values for one page.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	OGType      string
	Image       string
	SiteName    string
	TwitterCard string
}

// Meta computes the head values of a static route.
func (b *Builder) Meta(route *domain.StaticRoute) Meta {
	m := Meta{
		Title:       b.Title(route.Title),
		Description: b.Description(route.Description),
		Canonical:   b.Canonical(route.Path),
		OGType:      OGTypeWebsite,
		Image:       b.site.DefaultOGImage,
		SiteName:    b.site.BrandName,
		TwitterCard: TwitterCard,
	}
	if route.OGImage != "" {
		m.Image = route.OGImage
	}
	if route.BlogPost != nil {
		m.OGType = OGTypeArticle
		if route.BlogPost.Image != "" {
			m.Image = b.Absolute(route.BlogPost.Image)
		}
	}
	return m
}

// Absolute resolves a root-relative asset path against the base URL.
// Absolute URLs are returned unchanged.
func (b *Builder) Absolute(ref string) string {
	if ref == "" || ref[0] != '/' || (len(ref) > 1 && ref[1] == '/') {
		return ref
	}
	return trimBase(b.site.BaseURL) + ref
}

func trimBase(base string) string {
	for len(base) > 0 && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	return base
}
