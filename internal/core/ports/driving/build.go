package driving

import (
	"context"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
)

// BuildService runs the whole generation pipeline.
type BuildService interface {
	// Run loads content once and executes quality, search index, prerender,
	// fallbacks and sitemap in order. The returned run is recorded even
	// when a step fails.
	Run(ctx context.Context) (*domain.BuildRun, error)

	// History lists recorded runs, most recent first.
	History(ctx context.Context, limit int) ([]domain.BuildRun, error)
}
