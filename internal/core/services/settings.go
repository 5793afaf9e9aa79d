package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
	"github.com/exquisite-dentistry/sitegen/internal/core/ports/driven"
	"github.com/exquisite-dentistry/sitegen/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyBaseURL          = "site.base_url"
	keyBrandName        = "site.brand_name"
	keyBrandSuffix      = "site.brand_suffix"
	keyDefaultOGImage   = "site.default_og_image"
	keyPhone            = "site.phone"
	keyTitleMax         = "seo.title_max"
	keyDescriptionMax   = "seo.description_max"
	keyDoctorPaths      = "seo.doctor_paths"
	keyMinWords         = "quality.min_words"
	keyMinServiceLinks  = "quality.min_service_links"
	keyMinLocationLinks = "quality.min_location_links"
	keyLedgerPath       = "ledger.path"
)

// SettingsService manages site settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings, falling back to defaults for unset keys.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Site: domain.SiteSettings{
			BaseURL:        strings.TrimRight(s.getString(keyBaseURL, defaults.Site.BaseURL), "/"),
			BrandName:      s.getString(keyBrandName, defaults.Site.BrandName),
			BrandSuffix:    s.getString(keyBrandSuffix, defaults.Site.BrandSuffix),
			DefaultOGImage: s.getString(keyDefaultOGImage, defaults.Site.DefaultOGImage),
			Phone:          s.getString(keyPhone, defaults.Site.Phone),
		},
		SEO: domain.SEOSettings{
			TitleMax:       s.getInt(keyTitleMax, defaults.SEO.TitleMax),
			DescriptionMax: s.getInt(keyDescriptionMax, defaults.SEO.DescriptionMax),
			DoctorPaths:    s.getStringSlice(keyDoctorPaths, defaults.SEO.DoctorPaths),
		},
		Quality: domain.QualitySettings{
			MinWords:         s.getInt(keyMinWords, defaults.Quality.MinWords),
			MinServiceLinks:  s.getInt(keyMinServiceLinks, defaults.Quality.MinServiceLinks),
			MinLocationLinks: s.getInt(keyMinLocationLinks, defaults.Quality.MinLocationLinks),
		},
		Ledger: domain.LedgerSettings{
			Path: s.configStore.GetString(keyLedgerPath), // empty keeps the ledger in memory
		},
	}

	return settings, nil
}

// Save persists settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{keyBaseURL, settings.Site.BaseURL},
		{keyBrandName, settings.Site.BrandName},
		{keyBrandSuffix, settings.Site.BrandSuffix},
		{keyDefaultOGImage, settings.Site.DefaultOGImage},
		{keyPhone, settings.Site.Phone},
		{keyTitleMax, settings.SEO.TitleMax},
		{keyDescriptionMax, settings.SEO.DescriptionMax},
		{keyDoctorPaths, settings.SEO.DoctorPaths},
		{keyMinWords, settings.Quality.MinWords},
		{keyMinServiceLinks, settings.Quality.MinServiceLinks},
		{keyMinLocationLinks, settings.Quality.MinLocationLinks},
		{keyLedgerPath, settings.Ledger.Path},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return s.configStore.Save()
}

// Validate checks that the current settings can drive a build.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	u, err := url.Parse(settings.Site.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s must be an absolute http(s) URL, got %q",
			domain.ErrInvalidInput, keyBaseURL, settings.Site.BaseURL)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("%w: %s must not carry a query or fragment", domain.ErrInvalidInput, keyBaseURL)
	}
	if strings.TrimSpace(settings.Site.BrandSuffix) == "" {
		return fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidInput, keyBrandSuffix)
	}

	// The suffix alone plus " | " has to leave room for a title.
	if settings.SEO.TitleMax <= len(settings.Site.BrandSuffix)+3 {
		return fmt.Errorf("%w: %s (%d) leaves no room for titles next to the brand suffix",
			domain.ErrInvalidInput, keyTitleMax, settings.SEO.TitleMax)
	}
	if settings.SEO.DescriptionMax < 50 {
		return fmt.Errorf("%w: %s must be at least 50, got %d",
			domain.ErrInvalidInput, keyDescriptionMax, settings.SEO.DescriptionMax)
	}

	for key, n := range map[string]int{
		keyMinWords:         settings.Quality.MinWords,
		keyMinServiceLinks:  settings.Quality.MinServiceLinks,
		keyMinLocationLinks: settings.Quality.MinLocationLinks,
	} {
		if n < 0 {
			return fmt.Errorf("%w: %s must not be negative", domain.ErrInvalidInput, key)
		}
	}

	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	val := s.configStore.GetStringSlice(key)
	if len(val) == 0 {
		return defaultVal
	}
	return val
}
