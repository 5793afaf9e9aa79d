package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
	"github.com/exquisite-dentistry/sitegen/internal/core/ports/driven"
)

// Ensure BuildLedger implements the interface.
var _ driven.BuildLedger = (*BuildLedger)(nil)

// BuildLedger keeps build runs for the lifetime of the process.
type BuildLedger struct {
	mu   sync.RWMutex
	runs map[string]domain.BuildRun
}

// NewBuildLedger creates an empty ledger.
func NewBuildLedger() *BuildLedger {
	return &BuildLedger{runs: make(map[string]domain.BuildRun)}
}

// Save stores or replaces a run.
func (l *BuildLedger) Save(_ context.Context, run domain.BuildRun) error {
	if run.ID == "" {
		return fmt.Errorf("%w: build run without id", domain.ErrInvalidInput)
	}

	run.Outputs = slices.Clone(run.Outputs)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.runs[run.ID] = run
	return nil
}

// Get retrieves a run by ID.
func (l *BuildLedger) Get(_ context.Context, id string) (*domain.BuildRun, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	run, ok := l.runs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	run.Outputs = slices.Clone(run.Outputs)
	return &run, nil
}

// List returns up to limit runs, most recent first.
func (l *BuildLedger) List(_ context.Context, limit int) ([]domain.BuildRun, error) {
	l.mu.RLock()
	runs := make([]domain.BuildRun, 0, len(l.runs))
	for _, run := range l.runs {
		run.Outputs = nil
		runs = append(runs, run)
	}
	l.mu.RUnlock()

	slices.SortFunc(runs, func(a, b domain.BuildRun) int {
		if c := b.StartedAt.Compare(a.StartedAt); c != 0 {
			return c
		}
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		default:
			return 0
		}
	})

	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// Close is a no-op.
func (l *BuildLedger) Close() error { return nil }
