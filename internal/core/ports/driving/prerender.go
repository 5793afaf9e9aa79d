package driving

import (
	"context"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
)

// PrerenderService renders one static HTML document per route.
type PrerenderService interface {
	// Routes returns the deduplicated static routes in source order.
	Routes(content *domain.Content) []domain.StaticRoute

	// Render produces the document for a route from the SPA template.
	Render(template []byte, route *domain.StaticRoute) ([]byte, error)

	// Generate reads dist/index.html once and writes dist/<path>/index.html
	// for every route.
	Generate(ctx context.Context, content *domain.Content) (*domain.StepResult, error)
}
