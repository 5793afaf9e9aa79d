package domain

// SearchIndexVersion is the schema version written to search-index.json.
const SearchIndexVersion = 2

// SearchItemType is the kind of page a search entry points to.
type SearchItemType string

// Search item types.
const (
	SearchItemPage     SearchItemType = "page"
	SearchItemService  SearchItemType = "service"
	SearchItemLocation SearchItemType = "location"
	SearchItemBlog     SearchItemType = "blog"
)

// MergeRank returns the precedence used when two entries share an href.
// The entry with the higher rank becomes the primary of the merged item.
func (t SearchItemType) MergeRank() int {
	switch t {
	case SearchItemBlog:
		return 3
	case SearchItemService:
		return 2
	case SearchItemLocation:
		return 1
	default:
		return 0
	}
}

// SortOrder returns the position of the type in the serialised index.
// Services come first, then locations, pages and finally blog posts.
func (t SearchItemType) SortOrder() int {
	switch t {
	case SearchItemService:
		return 0
	case SearchItemLocation:
		return 1
	case SearchItemPage:
		return 2
	case SearchItemBlog:
		return 3
	default:
		return 4
	}
}

// IsValid returns true if the type is recognised.
func (t SearchItemType) IsValid() bool {
	switch t {
	case SearchItemPage, SearchItemService, SearchItemLocation, SearchItemBlog:
		return true
	default:
		return false
	}
}

// SearchIndexItem is one entry of the client-side search index.
type SearchIndexItem struct {
	ID          string         `json:"id"`
	Type        SearchItemType `json:"type"`
	Title       string         `json:"title"`
	Href        string         `json:"href"`
	Description string         `json:"description,omitempty"`
	H1          string         `json:"h1,omitempty"`
	Keywords    []string       `json:"keywords,omitempty"`
}

// SearchIndexFile is the serialised search index document.
type SearchIndexFile struct {
	Version int               `json:"version"`
	Items   []SearchIndexItem `json:"items"`
}
