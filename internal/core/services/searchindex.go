package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
	"github.com/exquisite-dentistry/sitegen/internal/core/ports/driven"
	"github.com/exquisite-dentistry/sitegen/internal/core/ports/driving"
	"github.com/exquisite-dentistry/sitegen/internal/logger"
)

// Ensure SearchIndexService implements the interface.
var _ driving.SearchIndexService = (*SearchIndexService)(nil)

// searchIndexFile is the name of the index under public/ and dist/.
const searchIndexFile = "search-index.json"

// SearchIndexService builds and writes the client-side search index.
type SearchIndexService struct {
	store driven.SiteStore
}

// NewSearchIndexService creates a new search index service.
func NewSearchIndexService(store driven.SiteStore) *SearchIndexService {
	return &SearchIndexService{store: store}
}

// Build merges every registry into a deduplicated, sorted index.
func (s *SearchIndexService) Build(content *domain.Content) (*domain.SearchIndexFile, error) {
	return BuildSearchIndex(content)
}

// Generate builds the index and writes it to public/ and, if present, dist/.
func (s *SearchIndexService) Generate(ctx context.Context, content *domain.Content) (*domain.StepResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Section("Search Index")
	index, err := BuildSearchIndex(content)
	if err != nil {
		return nil, err
	}

	data, err := EncodeSearchIndex(index)
	if err != nil {
		return nil, err
	}

	outputs, err := writePublicAndDist(s.store, domain.StepSearchIndex, searchIndexFile, data)
	if err != nil {
		return nil, err
	}

	logger.Info("search index generated", "items", len(index.Items))
	return &domain.StepResult{Step: domain.StepSearchIndex, Count: len(index.Items), Outputs: outputs}, nil
}

// EncodeSearchIndex serialises the index as 2-space indented JSON with a
// trailing newline. HTML characters are not escaped.
func EncodeSearchIndex(index *domain.SearchIndexFile) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(index); err != nil {
		return nil, fmt.Errorf("encode search index: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildSearchIndex drafts one item per service, location, route metadata
// entry, uncovered manual page, published post and story, merges items that
// share an href and sorts the result.
func BuildSearchIndex(content *domain.Content) (*domain.SearchIndexFile, error) {
	idx := newSearchIndexBuilder()

	reserved := make(map[string]bool)
	for _, slug := range content.ServiceSlugs() {
		reserved[domain.HrefKey("/"+slug)] = true
	}
	for _, slug := range content.LocationSlugs() {
		reserved[domain.HrefKey("/"+slug)] = true
	}

	for _, slug := range content.ServiceSlugs() {
		cfg := content.Services[slug]
		idx.add(domain.SearchIndexItem{
			Type:        domain.SearchItemService,
			Title:       cfg.Title,
			Href:        "/" + slug,
			Description: cfg.SEO.Description,
			H1:          cfg.Hero.Heading,
			Keywords:    cfg.SEO.Keywords,
		})
	}

	for _, slug := range content.LocationSlugs() {
		cfg := content.Locations[slug]
		idx.add(domain.SearchIndexItem{
			Type:        domain.SearchItemLocation,
			Title:       cfg.CityLabel + " Dentist",
			Href:        "/" + slug,
			Description: cfg.SEO.Description,
			H1:          cfg.Hero.Heading,
			Keywords:    cfg.SEO.Keywords,
		})
	}

	manualH1 := make(map[string]string, len(content.ManualPages))
	for i := range content.ManualPages {
		key := domain.HrefKey(content.ManualPages[i].Path)
		if _, ok := manualH1[key]; !ok {
			manualH1[key] = content.ManualPages[i].H1
		}
	}

	covered := make(map[string]bool)
	for _, href := range content.RouteMetadataPaths() {
		key := domain.HrefKey(href)
		covered[key] = true
		if reserved[key] {
			continue
		}
		meta := content.RouteMetadata[href]
		idx.add(domain.SearchIndexItem{
			Type:        domain.SearchItemPage,
			Title:       meta.Title,
			Href:        href,
			Description: meta.Description,
			H1:          manualH1[key],
			Keywords:    splitKeywords(meta.Keywords),
		})
	}

	for i := range content.ManualPages {
		page := &content.ManualPages[i]
		if covered[domain.HrefKey(page.Path)] {
			continue
		}
		idx.add(domain.SearchIndexItem{
			Type:        domain.SearchItemPage,
			Title:       page.Title,
			Href:        page.Path,
			Description: page.Description,
			H1:          page.H1,
		})
	}

	for _, post := range content.PublishedPosts() {
		keywords := append([]string{post.Category}, post.Tags...)
		if post.SourceSlug != "" {
			keywords = append(keywords, post.SourceSlug)
		}
		keywords = append(keywords, splitKeywords(post.SEOKeywords)...)

		idx.add(domain.SearchIndexItem{
			Type:        domain.SearchItemBlog,
			Title:       post.Title,
			Href:        "/blog/" + post.Slug,
			Description: post.Excerpt,
			H1:          post.Title,
			Keywords:    keywords,
		})
	}

	for i := range content.Stories {
		story := &content.Stories[i]
		description := story.SEO.Description
		if description == "" {
			description = story.ShortDescription
		}
		idx.add(domain.SearchIndexItem{
			Type:        domain.SearchItemPage,
			Title:       story.Title,
			Href:        "/transformation-stories/" + story.Slug,
			Description: description,
			H1:          story.Title,
			Keywords:    append(splitKeywords(story.SEO.Keywords), story.PatientName),
		})
	}

	items, err := idx.sorted()
	if err != nil {
		return nil, err
	}
	return &domain.SearchIndexFile{Version: domain.SearchIndexVersion, Items: items}, nil
}

// searchIndexBuilder collects items keyed by lower-cased normalised href,
// keeping first-insertion order for stable sorting.
type searchIndexBuilder struct {
	byKey map[string]int
	items []domain.SearchIndexItem
}

func newSearchIndexBuilder() *searchIndexBuilder {
	return &searchIndexBuilder{byKey: make(map[string]int)}
}

func (b *searchIndexBuilder) add(item domain.SearchIndexItem) {
	item.Href = domain.NormalizeInternalHref(strings.TrimSpace(item.Href))
	item.Title = strings.TrimSpace(item.Title)
	item.Description = strings.TrimSpace(item.Description)
	item.H1 = strings.TrimSpace(item.H1)
	item.Keywords = uniqueKeywords(item.Keywords)

	key := strings.ToLower(item.Href)
	if i, ok := b.byKey[key]; ok {
		b.items[i] = mergeSearchItems(b.items[i], item)
		return
	}
	b.byKey[key] = len(b.items)
	b.items = append(b.items, item)
}

func (b *searchIndexBuilder) sorted() ([]domain.SearchIndexItem, error) {
	items := make([]domain.SearchIndexItem, 0, len(b.items))
	for _, item := range b.items {
		if item.Href == "" || item.Title == "" {
			return nil, fmt.Errorf("%w: search item %q has no href or title", domain.ErrContentInvalid, item.Href)
		}
		item.ID = string(item.Type) + ":" + item.Href
		items = append(items, item)
	}

	c := collate.New(language.English, collate.IgnoreCase, collate.IgnoreDiacritics)
	sort.SliceStable(items, func(i, j int) bool {
		oi, oj := items[i].Type.SortOrder(), items[j].Type.SortOrder()
		if oi != oj {
			return oi < oj
		}
		return c.CompareString(items[i].Title, items[j].Title) < 0
	})
	return items, nil
}

// mergeSearchItems combines two items sharing an href. The item of higher
// merge rank is the primary; on a tie the existing item stays primary.
func mergeSearchItems(existing, incoming domain.SearchIndexItem) domain.SearchIndexItem {
	primary, secondary := existing, incoming
	if incoming.Type.MergeRank() > existing.Type.MergeRank() {
		primary, secondary = incoming, existing
	}

	merged := primary
	if merged.Title == "" {
		merged.Title = secondary.Title
	}
	if merged.Description == "" {
		merged.Description = secondary.Description
	}
	if merged.H1 == "" {
		merged.H1 = secondary.H1
	}

	keywords := append(append([]string{}, primary.Keywords...), secondary.Keywords...)
	if primary.H1 != "" && secondary.H1 != "" && !strings.EqualFold(primary.H1, secondary.H1) {
		keywords = append(keywords, secondary.H1)
	}
	merged.Keywords = uniqueKeywords(keywords)
	return merged
}

// splitKeywords splits a comma list, dropping empty parts.
func splitKeywords(list string) []string {
	var out []string
	for _, part := range strings.Split(list, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// uniqueKeywords trims keywords and drops empties and case-insensitive
// duplicates, keeping the first spelling. Returns nil when nothing remains.
func uniqueKeywords(values []string) []string {
	var out []string
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}
