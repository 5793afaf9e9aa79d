package driving

import (
	"context"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
)

// SitemapService writes the XML sitemap of all static routes.
type SitemapService interface {
	// Build encodes the sitemap document.
	Build(content *domain.Content) ([]byte, error)

	// Generate writes public/sitemap.xml, plus dist/sitemap.xml when dist/ exists.
	Generate(ctx context.Context, content *domain.Content) (*domain.StepResult, error)
}
