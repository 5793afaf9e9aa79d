package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exquisite-dentistry/sitegen/internal/adapters/driven/storage/memory"
	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
)

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
	assert.Equal(t, service.GetDefaults(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		"site.base_url":       "https://staging.example.com/",
		"site.brand_suffix":   "Example Dental",
		"seo.title_max":       60,
		"seo.doctor_paths":    []string{"/", "/team"},
		"quality.min_words":   80,
		"ledger.path":         ".sitegen/builds.db",
		"quality.unknown_key": true,
	})
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "https://staging.example.com", settings.Site.BaseURL)
	assert.Equal(t, "Example Dental", settings.Site.BrandSuffix)
	assert.Equal(t, domain.DefaultBrandName, settings.Site.BrandName)
	assert.Equal(t, 60, settings.SEO.TitleMax)
	assert.Equal(t, domain.DefaultDescriptionMax, settings.SEO.DescriptionMax)
	assert.Equal(t, []string{"/", "/team"}, settings.SEO.DoctorPaths)
	assert.Equal(t, 80, settings.Quality.MinWords)
	assert.Equal(t, 2, settings.Quality.MinServiceLinks)
	assert.Equal(t, ".sitegen/builds.db", settings.Ledger.Path)
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultAppSettings()
	settings.Site.Phone = "+1-310-555-0100"
	settings.Quality.MinLocationLinks = 3

	require.NoError(t, service.Save(&settings))

	assert.Equal(t, "+1-310-555-0100", store.GetString("site.phone"))
	assert.Equal(t, 3, store.GetInt("quality.min_location_links"))
	assert.Equal(t, domain.DefaultDoctorPaths(), store.GetStringSlice("seo.doctor_paths"))

	got, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, settings, *got)
}

func TestSettingsService_Validate(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]any
		wantErr string
	}{
		{name: "defaults", values: nil},
		{name: "relative base url", values: map[string]any{"site.base_url": "example.com"}, wantErr: "site.base_url"},
		{name: "ftp base url", values: map[string]any{"site.base_url": "ftp://example.com"}, wantErr: "site.base_url"},
		{name: "query in base url", values: map[string]any{"site.base_url": "https://example.com?x=1"}, wantErr: "query"},
		{name: "title max too small", values: map[string]any{"seo.title_max": 30}, wantErr: "seo.title_max"},
		{name: "description max too small", values: map[string]any{"seo.description_max": 20}, wantErr: "seo.description_max"},
		{name: "negative min words", values: map[string]any{"quality.min_words": -1}, wantErr: "quality.min_words"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore(tt.values))

			err := service.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
