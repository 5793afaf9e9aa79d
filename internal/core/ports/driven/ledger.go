package driven

import (
	"context"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
)

// BuildLedger persists the history of pipeline runs.
type BuildLedger interface {
	// Save stores or updates a run, including its output files.
	Save(ctx context.Context, run domain.BuildRun) error

	// Get retrieves a run by ID.
	// Returns domain.ErrNotFound if the run does not exist.
	Get(ctx context.Context, id string) (*domain.BuildRun, error)

	// List returns up to limit runs, most recent first.
	// A limit of zero or less returns every run.
	List(ctx context.Context, limit int) ([]domain.BuildRun, error)

	// Close releases any held resources.
	Close() error
}
