package domain

import "strings"

// RouteKind identifies which registry a static route was generated from.
type RouteKind string

// Route kinds.
const (
	RouteKindPage     RouteKind = "page"
	RouteKindService  RouteKind = "service"
	RouteKindLocation RouteKind = "location"
	RouteKindBlog     RouteKind = "blog"
	RouteKindStory    RouteKind = "story"
)

// RouteSection is a headed block of body content.
// A section is rendered as a heading followed by its paragraphs and a list of items.
type RouteSection struct {
	Heading    string   `yaml:"heading" json:"heading"`
	Paragraphs []string `yaml:"paragraphs" json:"paragraphs,omitempty"`
	Items      []string `yaml:"items" json:"items,omitempty"`

	// Location marks a "how to find us" section; routes that have one
	// skip the generic visit block.
	Location bool `yaml:"location" json:"location,omitempty"`
}

// RouteBlogPost carries the BlogPosting fields of a blog route.
type RouteBlogPost struct {
	Author   string `json:"author"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Image    string `json:"image,omitempty"`
}

// RouteVideo carries the VideoObject fields of a story route.
type RouteVideo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Src         string `json:"src"`
	Poster      string `json:"poster,omitempty"`
}

// StaticRoute is a single logical page that is pre-rendered to one HTML file.
type StaticRoute struct {
	Kind        RouteKind      `yaml:"kind" json:"kind"`
	Path        string         `yaml:"path" json:"path" validate:"required,startswith=/"`
	Title       string         `yaml:"title" json:"title" validate:"required"`
	Description string         `yaml:"description" json:"description"`
	H1          string         `yaml:"h1" json:"h1" validate:"required"`
	Paragraphs  []string       `yaml:"paragraphs" json:"paragraphs,omitempty"`
	Sections    []RouteSection `yaml:"sections" json:"sections,omitempty"`
	FAQs        []FAQ          `yaml:"faqs" json:"faqs,omitempty"`
	Links       []Link         `yaml:"links" json:"links,omitempty"`

	// FAQSet names an FAQ set to merge into FAQs when routes are built.
	FAQSet string `yaml:"faq_set,omitempty" json:"-"`

	// FAQAbout is the topic of the FAQPage schema.
	FAQAbout string `yaml:"faq_about,omitempty" json:"faqAbout,omitempty"`

	// Breadcrumb overrides the label of the final breadcrumb; H1 otherwise.
	Breadcrumb string `yaml:"breadcrumb,omitempty" json:"breadcrumb,omitempty"`

	// OGImage overrides the default Open Graph image.
	OGImage string `yaml:"og_image,omitempty" json:"ogImage,omitempty"`

	// NavLinks appends the default navigation links after Links.
	NavLinks bool `yaml:"nav_links" json:"-"`

	Procedure *ProcedureInfo `yaml:"procedure,omitempty" json:"procedure,omitempty"`
	BlogPost  *RouteBlogPost `yaml:"-" json:"blogPost,omitempty"`
	Video     *RouteVideo    `yaml:"-" json:"video,omitempty"`
}

// Crumb is one breadcrumb position.
type Crumb struct {
	Name string
	Path string
}

// Fixed breadcrumb ancestors.
var (
	crumbHome      = Crumb{Name: "Home", Path: "/"}
	crumbBlog      = Crumb{Name: "Blog", Path: "/blog"}
	crumbStories   = Crumb{Name: "Transformation Stories", Path: "/transformation-stories"}
	crumbLocations = Crumb{Name: "Locations", Path: "/locations"}
	crumbServices  = Crumb{Name: "Services", Path: "/services"}
	crumbVeneers   = Crumb{Name: "Veneers", Path: "/veneers"}
)

// BreadcrumbTrail returns the breadcrumbs from Home to the route itself.
// The root route has no trail.
func (r *StaticRoute) BreadcrumbTrail() []Crumb {
	key := HrefKey(r.Path)
	if key == "/" || key == "" {
		return nil
	}

	var ancestors []Crumb
	switch {
	case strings.HasPrefix(key, "/blog/"):
		ancestors = []Crumb{crumbBlog}
	case strings.HasPrefix(key, "/transformation-stories/"):
		ancestors = []Crumb{crumbStories}
	case r.Kind == RouteKindLocation:
		ancestors = []Crumb{crumbLocations}
	case strings.HasPrefix(key, "/veneers/"):
		ancestors = []Crumb{crumbServices, crumbVeneers}
	case r.Kind == RouteKindService || r.Procedure != nil:
		ancestors = []Crumb{crumbServices}
	}

	trail := []Crumb{crumbHome}
	for _, c := range ancestors {
		if HrefKey(c.Path) != key {
			trail = append(trail, c)
		}
	}
	return append(trail, Crumb{Name: r.BreadcrumbLabel(), Path: r.Path})
}

// HasLocationSection reports whether any section describes the practice location.
func (r *StaticRoute) HasLocationSection() bool {
	for i := range r.Sections {
		if r.Sections[i].Location {
			return true
		}
	}
	return false
}

// BreadcrumbLabel returns the label used for the route's own breadcrumb.
func (r *StaticRoute) BreadcrumbLabel() string {
	if r.Breadcrumb != "" {
		return r.Breadcrumb
	}
	if r.H1 != "" {
		return r.H1
	}
	return r.Title
}
