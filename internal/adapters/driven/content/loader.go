package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
	"github.com/exquisite-dentistry/sitegen/internal/core/ports/driven"
	"github.com/exquisite-dentistry/sitegen/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.ContentSource = (*Loader)(nil)

// Registry file names and patterns, relative to the content root.
const (
	PagesFile         = "pages.yaml"
	RouteMetadataFile = "route-metadata.yaml"
	FAQsFile          = "faqs.yaml"
	ServicesPattern   = "services/*.{yaml,yml}"
	LocationsPattern  = "locations/*.{yaml,yml}"
	StoriesPattern    = "stories/*.{yaml,yml}"
	BlogPattern       = "blog/**/*.md"
)

// Patterns returns every registry location, for file watchers.
func Patterns() []string {
	return []string{
		PagesFile, RouteMetadataFile, FAQsFile,
		ServicesPattern, LocationsPattern, StoriesPattern, BlogPattern,
	}
}

// Loader reads content registries from a filesystem.
type Loader struct {
	fsys     fs.FS
	location string
	validate *validator.Validate
	markdown *Markdown
}

// NewLoader creates a loader for a content directory on disk.
func NewLoader(dir string) (*Loader, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve content dir %s: %w", dir, err)
	}
	base := afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), abs))
	return NewFsLoader(base, abs), nil
}

// NewFsLoader creates a loader over an afero filesystem.
func NewFsLoader(fsys afero.Fs, location string) *Loader {
	return newLoader(afero.NewIOFS(fsys), location)
}

// NewDefaultLoader creates a loader for the compiled-in registries.
func NewDefaultLoader() *Loader {
	return newLoader(Defaults(), "embedded defaults")
}

func newLoader(fsys fs.FS, location string) *Loader {
	return &Loader{
		fsys:     fsys,
		location: location,
		validate: newValidator(),
		markdown: NewMarkdown(),
	}
}

// Location describes where content is read from.
func (l *Loader) Location() string {
	return l.location
}

// Load reads and validates every registry.
func (l *Loader) Load(ctx context.Context) (*domain.Content, error) {
	content := &domain.Content{
		Services:      make(map[string]domain.ServicePageConfig),
		Locations:     make(map[string]domain.LocationPageConfig),
		RouteMetadata: make(map[string]domain.PageMetadata),
		FAQSets:       make(map[string]domain.FAQSet),
	}

	steps := []struct {
		name string
		load func(*domain.Content) error
	}{
		{"faqs", l.loadFAQSets},
		{"pages", l.loadPages},
		{"route metadata", l.loadRouteMetadata},
		{"services", l.loadServices},
		{"locations", l.loadLocations},
		{"stories", l.loadStories},
		{"blog", l.loadPosts},
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := step.load(content); err != nil {
			return nil, err
		}
	}

	logger.Debug("loaded content",
		"location", l.location,
		"services", len(content.Services),
		"locations", len(content.Locations),
		"pages", len(content.ManualPages),
		"posts", len(content.Posts),
		"stories", len(content.Stories),
	)
	return content, nil
}

// ==================== Registry files ====================

func (l *Loader) loadFAQSets(content *domain.Content) error {
	var sets []domain.FAQSet
	if err := l.decodeFile(FAQsFile, &sets); err != nil {
		return err
	}
	for i := range sets {
		set := sets[i]
		if err := l.check(FAQsFile, set); err != nil {
			return err
		}
		if _, ok := content.FAQSets[set.Name]; ok {
			return fmt.Errorf("%w: %w: FAQ set %q is defined twice in %s",
				domain.ErrContentInvalid, domain.ErrDuplicateSlug, set.Name, FAQsFile)
		}
		content.FAQSets[set.Name] = set
	}
	return nil
}

func (l *Loader) loadPages(content *domain.Content) error {
	var pages []domain.StaticRoute
	if err := l.decodeFile(PagesFile, &pages); err != nil {
		return err
	}

	seen := make(map[string]bool, len(pages))
	for i := range pages {
		page := pages[i]
		if err := l.check(PagesFile, page); err != nil {
			return err
		}
		if page.Kind != "" && !validRouteKind(page.Kind) {
			return invalid(PagesFile, fmt.Sprintf("page %s has unknown kind %q", page.Path, page.Kind))
		}
		if page.FAQSet != "" {
			if _, ok := content.FAQSets[page.FAQSet]; !ok {
				return invalid(PagesFile, fmt.Sprintf("page %s references unknown FAQ set %q", page.Path, page.FAQSet))
			}
		}
		key := domain.HrefKey(page.Path)
		if seen[key] {
			return fmt.Errorf("%w: %w: page %s is defined twice in %s",
				domain.ErrContentInvalid, domain.ErrDuplicateSlug, page.Path, PagesFile)
		}
		seen[key] = true
		content.ManualPages = append(content.ManualPages, page)
	}
	return nil
}

func (l *Loader) loadRouteMetadata(content *domain.Content) error {
	var entries map[string]domain.PageMetadata
	if err := l.decodeFile(RouteMetadataFile, &entries); err != nil {
		return err
	}
	for href, meta := range entries {
		if !strings.HasPrefix(href, "/") {
			return invalid(RouteMetadataFile, fmt.Sprintf("route %q must start with /", href))
		}
		if err := l.check(RouteMetadataFile+" "+href, meta); err != nil {
			return err
		}
		content.RouteMetadata[href] = meta
	}
	return nil
}

// ==================== Per-entry files ====================

func (l *Loader) loadServices(content *domain.Content) error {
	files, err := l.glob(ServicesPattern)
	if err != nil {
		return err
	}

	sources := make(map[string]string, len(files))
	for _, file := range files {
		var cfg domain.ServicePageConfig
		if err := l.decodeFile(file, &cfg); err != nil {
			return err
		}
		if cfg.Slug == "" {
			cfg.Slug = fileSlug(file)
		}
		if err := l.checkEntry(file, cfg.Slug, cfg); err != nil {
			return err
		}
		if prev, ok := sources[cfg.Slug]; ok {
			return duplicate("service", cfg.Slug, prev, file)
		}
		sources[cfg.Slug] = file
		content.Services[cfg.Slug] = cfg
		content.ServiceOrder = append(content.ServiceOrder, cfg.Slug)
	}
	return nil
}

func (l *Loader) loadLocations(content *domain.Content) error {
	files, err := l.glob(LocationsPattern)
	if err != nil {
		return err
	}

	sources := make(map[string]string, len(files))
	for _, file := range files {
		var cfg domain.LocationPageConfig
		if err := l.decodeFile(file, &cfg); err != nil {
			return err
		}
		if cfg.Slug == "" {
			cfg.Slug = fileSlug(file)
		}
		if err := l.checkEntry(file, cfg.Slug, cfg); err != nil {
			return err
		}
		if prev, ok := sources[cfg.Slug]; ok {
			return duplicate("location", cfg.Slug, prev, file)
		}
		sources[cfg.Slug] = file
		content.Locations[cfg.Slug] = cfg
		content.LocationOrder = append(content.LocationOrder, cfg.Slug)
	}
	return nil
}

func (l *Loader) loadStories(content *domain.Content) error {
	files, err := l.glob(StoriesPattern)
	if err != nil {
		return err
	}

	sources := make(map[string]string, len(files))
	for _, file := range files {
		var story domain.TransformationStory
		if err := l.decodeFile(file, &story); err != nil {
			return err
		}
		if story.Slug == "" {
			story.Slug = fileSlug(file)
		}
		if story.ID == "" {
			story.ID = story.Slug
		}
		if err := l.checkEntry(file, story.Slug, story); err != nil {
			return err
		}
		if prev, ok := sources[story.Slug]; ok {
			return duplicate("story", story.Slug, prev, file)
		}
		sources[story.Slug] = file
		content.Stories = append(content.Stories, story)
	}
	return nil
}

func (l *Loader) loadPosts(content *domain.Content) error {
	files, err := l.glob(BlogPattern)
	if err != nil {
		return err
	}

	sources := make(map[string]string, len(files))
	for _, file := range files {
		data, err := fs.ReadFile(l.fsys, file)
		if err != nil {
			return fmt.Errorf("read %s: %w", file, err)
		}

		post, err := l.markdown.Post(data)
		if err != nil {
			return invalid(file, err.Error())
		}
		if post.Slug == "" {
			post.Slug = fileSlug(file)
		}
		if post.ID == "" {
			post.ID = post.Slug
		}
		if err := l.checkEntry(file, post.Slug, post); err != nil {
			return err
		}
		if prev, ok := sources[post.Slug]; ok {
			return duplicate("blog post", post.Slug, prev, file)
		}
		sources[post.Slug] = file
		content.Posts = append(content.Posts, *post)
	}
	return nil
}

// ==================== Helpers ====================

// decodeFile strictly decodes a YAML file into out. A missing file leaves
// out untouched.
func (l *Loader) decodeFile(name string, out any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return invalid(name, err.Error())
	}
	return nil
}

// glob returns the files matching pattern in lexical order.
func (l *Loader) glob(pattern string) ([]string, error) {
	matches, err := doublestar.Glob(l.fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// check validates a decoded value against its struct tags.
func (l *Loader) check(source string, value any) error {
	if err := l.validate.Struct(value); err != nil {
		return invalid(source, describe(err))
	}
	return nil
}

// checkEntry validates an entry and its slug.
func (l *Loader) checkEntry(source, entrySlug string, value any) error {
	if !slug.IsSlug(entrySlug) {
		return invalid(source, fmt.Sprintf("%q is not a valid slug", entrySlug))
	}
	return l.check(source, value)
}

// fileSlug derives a slug from a file name without its extension.
func fileSlug(file string) string {
	base := path.Base(file)
	return slug.Make(strings.TrimSuffix(base, path.Ext(base)))
}

func validRouteKind(kind domain.RouteKind) bool {
	switch kind {
	case domain.RouteKindPage, domain.RouteKindService, domain.RouteKindLocation,
		domain.RouteKindBlog, domain.RouteKindStory:
		return true
	default:
		return false
	}
}

func invalid(source, detail string) error {
	return fmt.Errorf("%w: %s: %s", domain.ErrContentInvalid, source, detail)
}

func duplicate(kind, entrySlug, first, second string) error {
	return fmt.Errorf("%w: %w: %s %q is defined in %s and %s",
		domain.ErrContentInvalid, domain.ErrDuplicateSlug, kind, entrySlug, first, second)
}
