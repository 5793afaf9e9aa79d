package domain

import (
	"regexp"
	"strings"
)

var (
	externalHref = regexp.MustCompile(`(?i)^(https?:)?//`)
	schemeHref   = regexp.MustCompile(`(?i)^(mailto|tel):`)
	fileLikePath = regexp.MustCompile(`/[^/]+\.[^/]+$`)
)

// NormalizeInternalHref returns the canonical trailing-slash form of an
// internal link. Anchors, external URLs, mailto:/tel: links, relative
// hrefs and file-like paths are returned unchanged. A slash is inserted
// before any query or fragment suffix.
//
// The function is total and idempotent.
func NormalizeInternalHref(href string) string {
	if href == "" || strings.HasPrefix(href, "#") {
		return href
	}
	if externalHref.MatchString(href) || schemeHref.MatchString(href) {
		return href
	}
	if !strings.HasPrefix(href, "/") {
		return href
	}

	pathname, suffix := href, ""
	if i := strings.IndexAny(href, "?#"); i >= 0 {
		pathname, suffix = href[:i], href[i:]
	}

	if pathname == "/" || strings.HasSuffix(pathname, "/") {
		return href
	}
	if fileLikePath.MatchString(pathname) {
		return href
	}

	return pathname + "/" + suffix
}

// HrefKey returns the deduplication key of an href: its normalised,
// lower-cased form.
func HrefKey(href string) string {
	return strings.ToLower(NormalizeInternalHref(href))
}
