package seo

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
)

func TestBuildTitle_AppendsBrand(t *testing.T) {
	title := BuildTitle("Porcelain Veneers")

	assert.Equal(t, "Porcelain Veneers | Exquisite Dentistry Los Angeles", title)
}

func TestBuildTitle_BrandAlreadyPresent(t *testing.T) {
	title := BuildTitle("Schedule Appointment | Exquisite Dentistry LA")

	assert.Equal(t, "Schedule Appointment | Exquisite Dentistry LA", title)
}

func TestBuildTitle_BrandMatchIsCaseInsensitive(t *testing.T) {
	title := BuildTitle("About EXQUISITE DENTISTRY")

	assert.Equal(t, "About EXQUISITE DENTISTRY", title)
}

func TestBuildTitle_LongTitleTruncated(t *testing.T) {
	title := BuildTitle("A very long title exceeding seventy characters when the brand suffix is appended definitely")

	assert.Equal(t, "A very long title exceeding seventy | Exquisite Dentistry Los Angeles", title)
	assert.LessOrEqual(t, utf8.RuneCountInString(title), 70)
}

func TestBuildTitle_NeverEndsWithSeparator(t *testing.T) {
	inputs := []string{
		"Dental Implants Los Angeles | Permanent Tooth Replacement",
		"Invisalign Los Angeles: Clear Aligner Dentist for busy professionals",
		"Teeth Whitening - ",
		"Exquisite Dentistry — the most trusted cosmetic practice in Los Angeles — book today",
		"Los Angeles Cosmetic Dentistry Blog | Expert Insights & Techniques",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			title := BuildTitle(input)
			assert.LessOrEqual(t, utf8.RuneCountInString(title), 70)
			assert.NotRegexp(t, `[\s|–—:-]$`, title)
		})
	}
}

func TestBuildTitle_SeparatorBeforeCutIsStripped(t *testing.T) {
	title := BuildTitle("Dental Implants Los Angeles | Permanent Tooth Replacement")

	assert.Equal(t, "Dental Implants Los Angeles | Exquisite Dentistry Los Angeles", title)
}

func TestBuildTitle_Empty(t *testing.T) {
	assert.Equal(t, "Exquisite Dentistry Los Angeles", BuildTitle(""))
}

func TestBuilder_Description(t *testing.T) {
	b := DefaultBuilder()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "Veneers in LA.", "Veneers in LA."},
		{"tags stripped", "<p>Custom <strong>veneers</strong></p><p>in LA</p>", "Custom veneers in LA"},
		{"script content dropped", `Hello<script>alert("x")</script> world`, "Hello world"},
		{"style content dropped", "<style>p{color:red}</style>Smile", "Smile"},
		{"quotes removed", `The "best" smile`, "The best smile"},
		{"entities decoded", "Fish &amp; chips", "Fish & chips"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, b.Description(tt.input))
		})
	}
}

func TestBuilder_Description_TruncatesAtWordBoundary(t *testing.T) {
	b := DefaultBuilder()
	input := strings.Repeat("smile ", 40)

	desc := b.Description(input)

	assert.LessOrEqual(t, utf8.RuneCountInString(desc), 155)
	assert.True(t, strings.HasSuffix(desc, "smile"))
	assert.NotContains(t, desc, "  ")
}

func TestCanonicalURL(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/veneers", "https://exquisitedentistryla.com/veneers/"},
		{"/", "https://exquisitedentistryla.com/"},
		{"", "https://exquisitedentistryla.com/"},
		{"/veneers/", "https://exquisitedentistryla.com/veneers/"},
		{"/blog/post-one", "https://exquisitedentistryla.com/blog/post-one/"},
		{"/contact?ref=nav", "https://exquisitedentistryla.com/contact/"},
		{"about", "https://exquisitedentistryla.com/about/"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanonicalURL(tt.path))
		})
	}
}

func TestNewBuilder_ZeroLimitsUseDefaults(t *testing.T) {
	b := NewBuilder(domain.DefaultAppSettings().Site, domain.SEOSettings{})

	assert.Equal(t, BuildTitle("Veneers"), b.Title("Veneers"))
}

func TestNewBuilder_CustomBrand(t *testing.T) {
	site := domain.SiteSettings{
		BaseURL:     "https://example.com/",
		BrandName:   "Example",
		BrandSuffix: "Example Clinic",
	}
	b := NewBuilder(site, domain.SEOSettings{TitleMax: 30})

	assert.Equal(t, "Whitening | Example Clinic", b.Title("Whitening"))
	assert.Equal(t, "https://example.com/", b.Canonical("/"))
	assert.Equal(t, "https://example.com/a/", b.Canonical("/a"))
}

func TestBuilder_Meta(t *testing.T) {
	b := DefaultBuilder()

	page := b.Meta(&domain.StaticRoute{Path: "/veneers", Title: "Porcelain Veneers", Description: "Custom veneers."})
	assert.Equal(t, "Porcelain Veneers | Exquisite Dentistry Los Angeles", page.Title)
	assert.Equal(t, "https://exquisitedentistryla.com/veneers/", page.Canonical)
	assert.Equal(t, OGTypeWebsite, page.OGType)
	assert.Equal(t, domain.DefaultOGImage, page.Image)
	assert.Equal(t, "Exquisite Dentistry", page.SiteName)
	assert.Equal(t, TwitterCard, page.TwitterCard)

	post := b.Meta(&domain.StaticRoute{
		Path:     "/blog/veneer-care",
		Title:    "Veneer Care",
		BlogPost: &domain.RouteBlogPost{Image: "/images/veneers.webp"},
	})
	require.Equal(t, OGTypeArticle, post.OGType)
	assert.Equal(t, "https://exquisitedentistryla.com/images/veneers.webp", post.Image)
}

func TestBuilder_Absolute(t *testing.T) {
	b := DefaultBuilder()

	assert.Equal(t, "https://exquisitedentistryla.com/a.png", b.Absolute("/a.png"))
	assert.Equal(t, "https://cdn.example.com/a.png", b.Absolute("https://cdn.example.com/a.png"))
	assert.Equal(t, "//cdn.example.com/a.png", b.Absolute("//cdn.example.com/a.png"))
	assert.Equal(t, "", b.Absolute(""))
}
