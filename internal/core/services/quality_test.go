package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
)

func qualityLimits() domain.QualitySettings {
	return domain.DefaultAppSettings().Quality
}

func messages(issues []domain.QualityIssue) []string {
	out := make([]string, 0, len(issues))
	for _, issue := range issues {
		out = append(out, issue.Message)
	}
	return out
}

func TestQualityService_Check_Clean(t *testing.T) {
	report := NewQualityService(qualityLimits()).Check(testContent())

	assert.False(t, report.HasErrors(), messages(report.Errors()))
}

func TestQualityService_Check_ThinCopyWarns(t *testing.T) {
	report := NewQualityService(qualityLimits()).Check(testContent())

	warnings := messages(report.Warnings())
	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0], `Service "/teeth-cleaning" contains`)
	assert.Contains(t, warnings[0], "(< 150).")
}

func TestQualityService_Check_NoWarningsBelowThreshold(t *testing.T) {
	limits := qualityLimits()
	limits.MinWords = 0

	report := NewQualityService(limits).Check(testContent())

	assert.Empty(t, report.Warnings())
}

func TestQualityService_Check_TooFewLinks(t *testing.T) {
	content := testContent()
	cfg := content.Services["teeth-cleaning"]
	cfg.InternalLinks = nil
	content.Services["teeth-cleaning"] = cfg

	report := NewQualityService(qualityLimits()).Check(content)

	assert.Equal(t, []string{
		`Service "teeth-cleaning" must define at least 2 internal link(s).`,
	}, messages(report.Errors()))
}

func TestQualityService_Check_InvalidHref(t *testing.T) {
	content := testContent()
	cfg := content.Locations["west-hollywood-dentist"]
	cfg.RelatedServices = []domain.Link{{Label: "Instagram", Href: "https://instagram.com/x"}}
	content.Locations["west-hollywood-dentist"] = cfg

	report := NewQualityService(qualityLimits()).Check(content)

	assert.Equal(t, []string{
		`Location "west-hollywood-dentist" has an invalid href (https://instagram.com/x) for link "Instagram".`,
	}, messages(report.Errors()))
}

func TestQualityService_Check_MissingFields(t *testing.T) {
	content := testContent()
	cfg := content.Services["dental-implants"]
	cfg.SEO = domain.SEOFields{}
	cfg.Hero.Heading = " "
	content.Services["dental-implants"] = cfg

	report := NewQualityService(qualityLimits()).Check(content)

	assert.Equal(t, []string{
		`Service "dental-implants" is missing seo.title.`,
		`Service "dental-implants" is missing seo.description.`,
		`Service "dental-implants" is missing a hero heading.`,
	}, messages(report.Errors()))
}
