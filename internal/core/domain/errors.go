package domain

import "errors"

// Domain errors represent generation failures.
// These are distinct from infrastructure (filesystem) errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates a collaborator has not been configured.
	ErrNotImplemented = errors.New("not implemented")

	// Content Errors.

	// ErrContentInvalid indicates a content registry failed load-time validation.
	ErrContentInvalid = errors.New("content invalid")

	// ErrDuplicateSlug indicates two registry entries share a slug.
	ErrDuplicateSlug = errors.New("duplicate slug")

	// ErrQualityFailed indicates the content-quality check reported errors.
	ErrQualityFailed = errors.New("content quality check failed")

	// Rendering Errors.

	// ErrTemplateMissing indicates the SPA template (dist/index.html) could not be read.
	ErrTemplateMissing = errors.New("template missing")

	// ErrRootNotFound indicates the template has no <div id="root"> element.
	// It is fatal for the whole prerender run.
	ErrRootNotFound = errors.New("could not locate #root element in template")

	// ErrHeadNotFound indicates the template has no <head> element to inject into.
	ErrHeadNotFound = errors.New("could not locate <head> element in template")

	// ErrFallbackInvalid indicates a generated fallback page failed its post-generation checks.
	ErrFallbackInvalid = errors.New("fallback page invalid")
)
