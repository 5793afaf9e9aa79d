package domain

// Default site identity and generation limits.
const (
	DefaultBaseURL        = "https://exquisitedentistryla.com"
	DefaultBrandName      = "Exquisite Dentistry"
	DefaultBrandSuffix    = "Exquisite Dentistry Los Angeles"
	DefaultOGImage        = DefaultBaseURL + "/lovable-uploads/dr-aguil-banner-2024-m.webp"
	DefaultPhone          = "+1-323-272-2388"
	DefaultTitleMax       = 70
	DefaultDescriptionMax = 155
)

// SiteSettings describes the site identity used in titles, canonical URLs and schemas.
type SiteSettings struct {
	// BaseURL is the public origin without a trailing slash.
	BaseURL string

	// BrandName is matched case-insensitively against titles to decide
	// whether the brand suffix is appended.
	BrandName string

	// BrandSuffix is appended to titles after " | ".
	BrandSuffix string

	// DefaultOGImage is used when a route sets no Open Graph image.
	DefaultOGImage string

	// Phone is the practice telephone number in E.164-like form.
	Phone string
}

// SEOSettings holds limits applied to generated head metadata.
type SEOSettings struct {
	TitleMax       int
	DescriptionMax int

	// DoctorPaths lists route paths whose graph includes the doctor entity.
	DoctorPaths []string
}

// QualitySettings holds the content-quality thresholds.
type QualitySettings struct {
	MinWords         int
	MinServiceLinks  int
	MinLocationLinks int
}

// LedgerSettings configures where build runs are recorded.
type LedgerSettings struct {
	// Path is the SQLite database file. Empty keeps the ledger in memory.
	Path string
}

// AppSettings holds all application settings.
type AppSettings struct {
	Site    SiteSettings
	SEO     SEOSettings
	Quality QualitySettings
	Ledger  LedgerSettings
}

// DefaultAppSettings returns the compiled-in settings.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Site: SiteSettings{
			BaseURL:        DefaultBaseURL,
			BrandName:      DefaultBrandName,
			BrandSuffix:    DefaultBrandSuffix,
			DefaultOGImage: DefaultOGImage,
			Phone:          DefaultPhone,
		},
		SEO: SEOSettings{
			TitleMax:       DefaultTitleMax,
			DescriptionMax: DefaultDescriptionMax,
			DoctorPaths:    DefaultDoctorPaths(),
		},
		Quality: QualitySettings{
			MinWords:         150,
			MinServiceLinks:  2,
			MinLocationLinks: 1,
		},
	}
}

// DefaultDoctorPaths returns the routes that feature the doctor entity by default.
func DefaultDoctorPaths() []string {
	return []string{"/", "/about", "/veneers", "/services", "/testimonials", "/smile-gallery"}
}

// IncludesDoctor reports whether the doctor entity belongs on the given path.
// Paths are compared after href normalisation.
func (s SEOSettings) IncludesDoctor(path string) bool {
	key := HrefKey(path)
	for _, p := range s.DoctorPaths {
		if HrefKey(p) == key {
			return true
		}
	}
	return false
}
