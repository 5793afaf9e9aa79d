package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exquisite-dentistry/sitegen/internal/adapters/driven/storage/memory"
	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
)

func TestFallbackService_RenderService(t *testing.T) {
	service := NewFallbackService(memory.NewSiteStore(nil), testSettings())
	cfg := testContent().Services["dental-implants"]

	out, err := service.RenderService(&cfg)
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "<title>Dental Implants Los Angeles | Exquisite Dentistry Los Angeles</title>")
	assert.Contains(t, html, `<meta name="description" content="Permanent tooth replacement with dental implants.">`)
	assert.Contains(t, html, `<link rel="canonical" href="https://exquisitedentistryla.com/dental-implants/">`)
	assert.Contains(t, html, `"@type":"MedicalProcedure"`)
	assert.Contains(t, html, "<h1>Dental Implants in Los Angeles</h1>")
}

func TestFallbackService_RenderLocation(t *testing.T) {
	service := NewFallbackService(memory.NewSiteStore(nil), testSettings())
	cfg := testContent().Locations["beverly-hills-dentist"]

	out, err := service.RenderLocation(&cfg)
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, `<link rel="canonical" href="https://exquisitedentistryla.com/beverly-hills-dentist/">`)
	assert.Contains(t, html, `"@type":"Dentist"`)
	assert.Contains(t, html, "Why Beverly Hills Chooses Us")
}

func TestFallbackService_Generate(t *testing.T) {
	store := memory.NewSiteStore(nil)
	service := NewFallbackService(store, testSettings())

	result, err := service.Generate(context.Background(), testContent())
	require.NoError(t, err)

	assert.Equal(t, domain.StepFallbacks, result.Step)
	assert.Equal(t, 4, result.Count)
	assert.Equal(t, []string{
		"public/beverly-hills-dentist.html",
		"public/dental-implants.html",
		"public/teeth-cleaning.html",
		"public/west-hollywood-dentist.html",
	}, store.Files())

	var paths []string
	for _, out := range result.Outputs {
		paths = append(paths, out.Path)
	}
	assert.Equal(t, []string{
		"public/teeth-cleaning.html",
		"public/dental-implants.html",
		"public/beverly-hills-dentist.html",
		"public/west-hollywood-dentist.html",
	}, paths)
}

func TestFallbackService_Generate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := memory.NewSiteStore(nil)
	result, err := NewFallbackService(store, testSettings()).Generate(ctx, testContent())
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, result.Count)
	assert.Empty(t, store.Files())
}

func TestValidateFallback(t *testing.T) {
	complete := `<h1>x</h1><meta name="description" content="d"><link rel="canonical" href="c">` +
		`<script type="application/ld+json">{}</script>`

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "missing h1",
			html: `<meta name="description"><link rel="canonical"><script type="application/ld+json"></script>`,
			want: "Generated HTML for veneers is missing an <h1>.",
		},
		{
			name: "missing description",
			html: `<h1>x</h1><link rel="canonical"><script type="application/ld+json"></script>`,
			want: "Generated HTML for veneers lacks a meta description.",
		},
		{
			name: "missing canonical",
			html: `<h1>x</h1><meta name="description"><script type="application/ld+json"></script>`,
			want: "Generated HTML for veneers lacks a canonical tag.",
		},
		{
			name: "missing schema",
			html: `<h1>x</h1><meta name="description"><link rel="canonical">`,
			want: "Generated HTML for veneers is missing schema.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFallback([]byte(tt.html), "veneers")
			require.ErrorIs(t, err, domain.ErrFallbackInvalid)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	assert.NoError(t, ValidateFallback([]byte(complete), "veneers"))
}
