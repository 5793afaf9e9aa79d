package driving

import (
	"context"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
)

// SearchIndexService builds the client-side search index.
type SearchIndexService interface {
	// Build merges every registry into a deduplicated, sorted index.
	Build(content *domain.Content) (*domain.SearchIndexFile, error)

	// Generate builds the index and writes public/search-index.json, plus
	// dist/search-index.json when dist/ exists.
	Generate(ctx context.Context, content *domain.Content) (*domain.StepResult, error)
}
