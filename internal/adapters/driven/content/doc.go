// Package content loads the site's content registries from YAML and
// Markdown files.
//
// A content directory holds:
//
//	pages.yaml            manual static routes
//	route-metadata.yaml   SPA route metadata keyed by path
//	faqs.yaml             named FAQ sets referenced by pages
//	services/*.yaml       one service page per file
//	locations/*.yaml      one location page per file
//	stories/*.yaml        one transformation story per file
//	blog/**/*.md          blog posts with YAML front matter
//
// Every registry is optional. Registry files are decoded strictly, so
// unknown keys are reported, and every entry is validated before the
// content is handed to the generation services. A compiled-in copy of the
// practice's content is used when no directory is configured.
package content
