package driving

import "github.com/exquisite-dentistry/sitegen/internal/core/domain"

// QualityService checks authored content against editorial rules.
type QualityService interface {
	// Check returns every finding. It never fails; callers decide on
	// report.HasErrors().
	Check(content *domain.Content) *domain.QualityReport
}
