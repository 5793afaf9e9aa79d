package driven

import (
	"context"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
)

// ContentSource loads the content registries for one generation run.
type ContentSource interface {
	// Load reads and validates every registry.
	// Returns domain.ErrContentInvalid wrapped with detail when validation fails.
	Load(ctx context.Context) (*domain.Content, error)

	// Location describes where content is read from, for log output.
	Location() string
}
