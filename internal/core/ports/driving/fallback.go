package driving

import (
	"context"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
)

// FallbackService writes standalone HTML pages for service and location slugs.
type FallbackService interface {
	// RenderService builds and validates the fallback page of a service.
	RenderService(service *domain.ServicePageConfig) ([]byte, error)

	// RenderLocation builds and validates the fallback page of a location.
	RenderLocation(location *domain.LocationPageConfig) ([]byte, error)

	// Generate writes public/<slug>.html for every service and location.
	Generate(ctx context.Context, content *domain.Content) (*domain.StepResult, error)
}
