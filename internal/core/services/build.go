package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
	"github.com/exquisite-dentistry/sitegen/internal/core/ports/driven"
	"github.com/exquisite-dentistry/sitegen/internal/core/ports/driving"
	"github.com/exquisite-dentistry/sitegen/internal/logger"
)

// Ensure BuildService implements the interface.
var _ driving.BuildService = (*BuildService)(nil)

// BuildSteps are the generation services a build runs after the quality check.
type BuildSteps struct {
	Quality     driving.QualityService
	SearchIndex driving.SearchIndexService
	Prerender   driving.PrerenderService
	Fallbacks   driving.FallbackService
	Sitemap     driving.SitemapService
}

// BuildService runs the whole pipeline and records every run in the ledger.
type BuildService struct {
	source driven.ContentSource
	ledger driven.BuildLedger
	steps  BuildSteps
	now    func() time.Time
	newID  func() string
}

// NewBuildService creates a new build service.
func NewBuildService(source driven.ContentSource, ledger driven.BuildLedger, steps BuildSteps) *BuildService {
	return &BuildService{
		source: source,
		ledger: ledger,
		steps:  steps,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Run loads content once, checks quality and then generates the search
// index, static routes, fallback pages and sitemap in that order. The run is
// recorded even when a step fails; the returned error is the step's error.
func (s *BuildService) Run(ctx context.Context) (*domain.BuildRun, error) {
	if s.source == nil || s.ledger == nil {
		return nil, domain.ErrNotImplemented
	}

	run := &domain.BuildRun{
		ID:        s.newID(),
		StartedAt: s.now().UTC(),
		Status:    domain.BuildRunning,
	}
	if err := s.ledger.Save(ctx, *run); err != nil {
		return nil, fmt.Errorf("record build start: %w", err)
	}
	logger.Info("build started", "run", run.ID, "content", s.source.Location())

	err := s.execute(ctx, run)
	run.FinishedAt = s.now().UTC()
	if err != nil {
		run.Status = domain.BuildFailed
		run.Error = err.Error()
	} else {
		run.Status = domain.BuildSucceeded
	}

	// Record the outcome even when ctx was cancelled mid-run.
	if saveErr := s.ledger.Save(context.WithoutCancel(ctx), *run); saveErr != nil {
		return run, errors.Join(err, fmt.Errorf("record build result: %w", saveErr))
	}

	logger.Info("build finished", "run", run.ID, "status", run.Status, "duration", run.Duration())
	return run, err
}

func (s *BuildService) execute(ctx context.Context, run *domain.BuildRun) error {
	content, err := s.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	logger.Section("Content Quality")
	report := s.steps.Quality.Check(content)
	run.Warnings = len(report.Warnings())
	for _, issue := range report.Warnings() {
		logger.Warn(issue.Message)
	}
	if report.HasErrors() {
		return &domain.QualityError{Report: report}
	}

	steps := []struct {
		name  domain.BuildStep
		run   func(context.Context, *domain.Content) (*domain.StepResult, error)
		count *int
	}{
		{domain.StepSearchIndex, s.steps.SearchIndex.Generate, &run.Items},
		{domain.StepPrerender, s.steps.Prerender.Generate, &run.Routes},
		{domain.StepFallbacks, s.steps.Fallbacks.Generate, &run.Fallbacks},
		{domain.StepSitemap, s.steps.Sitemap.Generate, nil},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		result, err := step.run(ctx, content)
		if result != nil {
			run.Outputs = append(run.Outputs, result.Outputs...)
			if step.count != nil {
				*step.count = result.Count
			}
		}
		if err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}
	return nil
}

// History lists recorded runs, most recent first.
func (s *BuildService) History(ctx context.Context, limit int) ([]domain.BuildRun, error) {
	if s.ledger == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.ledger.List(ctx, limit)
}
