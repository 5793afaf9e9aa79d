// Package seo computes the head metadata of a rendered page: the final
// title, the meta description, the canonical URL and the Open Graph and
// Twitter fields derived from them.
package seo

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
)

const titleSeparator = " | "

var (
	trailingWord       = regexp.MustCompile(`\s+\S*$`)
	trailingSeparators = regexp.MustCompile(`[\s|–—:-]+$`)
	whitespace         = regexp.MustCompile(`\s+`)
	metaUnsafe         = strings.NewReplacer(`"`, "", "<", "", ">", "")
)

// Builder derives head metadata using the site identity and SEO limits.
// It is safe for concurrent use.
type Builder struct {
	site           domain.SiteSettings
	titleMax       int
	descriptionMax int
	strict         *bluemonday.Policy
}

// NewBuilder creates a builder. Zero limits fall back to the defaults.
func NewBuilder(site domain.SiteSettings, limits domain.SEOSettings) *Builder {
	b := &Builder{
		site:           site,
		titleMax:       limits.TitleMax,
		descriptionMax: limits.DescriptionMax,
		strict:         bluemonday.StrictPolicy().AddSpaceWhenStrippingTag(true),
	}
	if b.titleMax <= 0 {
		b.titleMax = domain.DefaultTitleMax
	}
	if b.descriptionMax <= 0 {
		b.descriptionMax = domain.DefaultDescriptionMax
	}
	return b
}

// DefaultBuilder returns a builder over the compiled-in settings.
func DefaultBuilder() *Builder {
	settings := domain.DefaultAppSettings()
	return NewBuilder(settings.Site, settings.SEO)
}

// BuildTitle is Title on the default builder.
func BuildTitle(title string) string {
	return DefaultBuilder().Title(title)
}

// CanonicalURL is Canonical on the default builder.
func CanonicalURL(path string) string {
	return DefaultBuilder().Canonical(path)
}

// Title appends the brand suffix unless the title already names the brand,
// then truncates at a word boundary and strips trailing separators.
func (b *Builder) Title(title string) string {
	title = strings.TrimSpace(title)
	brand := strings.ToLower(b.site.BrandName)
	if brand != "" && strings.Contains(strings.ToLower(title), brand) {
		return stripTrailingSeparators(truncateWords(title, b.titleMax))
	}
	if b.site.BrandSuffix == "" {
		return stripTrailingSeparators(truncateWords(title, b.titleMax))
	}

	room := b.titleMax - utf8.RuneCountInString(titleSeparator) - utf8.RuneCountInString(b.site.BrandSuffix)
	if utf8.RuneCountInString(title) > room {
		title = truncateWords(title, room)
	}
	title = stripTrailingSeparators(title)
	if title == "" {
		return truncateWords(b.site.BrandSuffix, b.titleMax)
	}

	return stripTrailingSeparators(truncateWords(title+titleSeparator+b.site.BrandSuffix, b.titleMax))
}

// Description strips markup, including script and style content, collapses
// whitespace, drops quote and angle characters and truncates at a word boundary.
func (b *Builder) Description(input string) string {
	text := PlainText(b.strict, input)
	text = strings.TrimSpace(metaUnsafe.Replace(text))
	if utf8.RuneCountInString(text) <= b.descriptionMax {
		return text
	}
	return strings.TrimSpace(trailingWord.ReplaceAllString(runePrefix(text, b.descriptionMax), ""))
}

// Canonical returns the absolute canonical URL of a route path.
// The root maps to "{base}/"; every other path ends in exactly one slash.
func (b *Builder) Canonical(path string) string {
	base := strings.TrimRight(b.site.BaseURL, "/")
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return base + "/"
	}
	return base + "/" + trimmed + "/"
}

// Site returns the site identity the builder was created with.
func (b *Builder) Site() domain.SiteSettings {
	return b.site
}

// PlainText strips every tag from input with policy, decodes entities
// and collapses runs of whitespace into single spaces.
func PlainText(policy *bluemonday.Policy, input string) string {
	if input == "" {
		return ""
	}
	text := html.UnescapeString(policy.Sanitize(input))
	return strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
}

// truncateWords cuts input to max runes, dropping any partial last word.
func truncateWords(input string, max int) string {
	if utf8.RuneCountInString(input) <= max {
		return input
	}
	if max <= 0 {
		return ""
	}
	return strings.TrimSpace(trailingWord.ReplaceAllString(runePrefix(input, max), ""))
}

func stripTrailingSeparators(input string) string {
	return strings.TrimSpace(trailingSeparators.ReplaceAllString(input, ""))
}

func runePrefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
