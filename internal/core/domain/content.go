package domain

import "sort"

// Link is an internal or external hyperlink with a display label.
type Link struct {
	Label string `yaml:"label" json:"label" validate:"required"`
	Href  string `yaml:"href" json:"href" validate:"required"`
}

// FAQ is a single question and answer pair.
type FAQ struct {
	Question string `yaml:"question" json:"question" validate:"required"`
	Answer   string `yaml:"answer" json:"answer" validate:"required"`
}

// SEOFields holds the search-engine metadata authored for a page.
type SEOFields struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Keywords    []string `yaml:"keywords" json:"keywords,omitempty"`
}

// TitledText is a titled paragraph, used for callouts and benefits.
type TitledText struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// TreatmentStep is one step of a treatment timeline.
type TreatmentStep struct {
	Title  string `yaml:"title" json:"title"`
	Detail string `yaml:"detail" json:"detail"`
}

// CallToAction is the closing call to action of a content page.
type CallToAction struct {
	Heading       string `yaml:"heading" json:"heading"`
	Description   string `yaml:"description" json:"description"`
	PrimaryText   string `yaml:"primary_text" json:"primaryText"`
	PrimaryHref   string `yaml:"primary_href" json:"primaryHref"`
	SecondaryText string `yaml:"secondary_text,omitempty" json:"secondaryText,omitempty"`
	SecondaryHref string `yaml:"secondary_href,omitempty" json:"secondaryHref,omitempty"`
}

// ProcedureInfo carries the hints needed to emit a MedicalProcedure schema.
type ProcedureInfo struct {
	Name          string `yaml:"name" json:"name"`
	ProcedureType string `yaml:"procedure_type" json:"procedureType"`
	BodyLocation  string `yaml:"body_location" json:"bodyLocation"`
	RecoveryTime  string `yaml:"recovery_time,omitempty" json:"recoveryTime,omitempty"`
	PriceRange    string `yaml:"price_range,omitempty" json:"priceRange,omitempty"`
}

// ServiceHero is the hero block of a service page.
type ServiceHero struct {
	Eyebrow    string   `yaml:"eyebrow" json:"eyebrow"`
	Heading    string   `yaml:"heading" json:"heading"`
	Subheading string   `yaml:"subheading" json:"subheading"`
	Highlights []string `yaml:"highlights" json:"highlights,omitempty"`
}

// ServiceOverview is the introductory block of a service page.
type ServiceOverview struct {
	Intro    []string     `yaml:"intro" json:"intro"`
	Callouts []TitledText `yaml:"callouts" json:"callouts,omitempty"`
}

// ServicePageConfig is the authored content of one treatment page.
// Slug is the registry key.
type ServicePageConfig struct {
	Slug           string          `yaml:"slug" json:"slug" validate:"required"`
	Title          string          `yaml:"title" json:"title" validate:"required"`
	SEO            SEOFields       `yaml:"seo" json:"seo"`
	Hero           ServiceHero     `yaml:"hero" json:"hero"`
	Overview       ServiceOverview `yaml:"overview" json:"overview"`
	Benefits       []TitledText    `yaml:"benefits" json:"benefits,omitempty"`
	TreatmentSteps []TreatmentStep `yaml:"treatment_steps" json:"treatmentSteps,omitempty"`
	FAQs           []FAQ           `yaml:"faqs" json:"faqs,omitempty" validate:"dive"`
	CTA            CallToAction    `yaml:"cta" json:"cta"`
	InternalLinks  []Link          `yaml:"internal_links" json:"internalLinks"`
	Procedure      *ProcedureInfo  `yaml:"procedure,omitempty" json:"procedure,omitempty"`
}

// Stat is a labelled figure shown in a location hero.
type Stat struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

// LocationHero is the hero block of a location page.
type LocationHero struct {
	Heading    string `yaml:"heading" json:"heading"`
	Subheading string `yaml:"subheading" json:"subheading"`
	Stats      []Stat `yaml:"stats" json:"stats,omitempty"`
}

// PracticeLocation describes how to reach the practice from a neighbourhood.
type PracticeLocation struct {
	Heading        string   `yaml:"heading" json:"heading"`
	Description    string   `yaml:"description" json:"description"`
	Highlights     []string `yaml:"highlights" json:"highlights,omitempty"`
	DirectionsHref string   `yaml:"directions_href,omitempty" json:"directionsHref,omitempty"`
}

// Testimonial is a short patient quote.
type Testimonial struct {
	Quote  string `yaml:"quote" json:"quote"`
	Author string `yaml:"author" json:"author"`
}

// LocationPageConfig is the authored content of one neighbourhood landing page.
// Slug is the registry key.
type LocationPageConfig struct {
	Slug                   string            `yaml:"slug" json:"slug" validate:"required"`
	CityLabel              string            `yaml:"city_label" json:"cityLabel" validate:"required"`
	SEO                    SEOFields         `yaml:"seo" json:"seo"`
	Hero                   LocationHero      `yaml:"hero" json:"hero"`
	PracticeLocation       *PracticeLocation `yaml:"practice_location,omitempty" json:"practiceLocation,omitempty"`
	NeighborhoodHighlights []string          `yaml:"neighborhood_highlights" json:"neighborhoodHighlights,omitempty"`
	SignatureServices      []string          `yaml:"signature_services" json:"signatureServices,omitempty"`
	Testimonials           []Testimonial     `yaml:"testimonials" json:"testimonials,omitempty"`
	FAQs                   []FAQ             `yaml:"faqs" json:"faqs,omitempty" validate:"dive"`
	RelatedServices        []Link            `yaml:"related_services" json:"relatedServices"`
	CTA                    CallToAction      `yaml:"cta" json:"cta"`
}

// BlogPost is one article of the practice blog.
// Only posts with Published set are visible to routes and the search index.
type BlogPost struct {
	ID             string   `yaml:"id" json:"id" validate:"required"`
	Slug           string   `yaml:"slug" json:"slug" validate:"required"`
	Title          string   `yaml:"title" json:"title" validate:"required"`
	Excerpt        string   `yaml:"excerpt" json:"excerpt"`
	Content        string   `yaml:"-" json:"content"`
	Author         string   `yaml:"author" json:"author"`
	Date           string   `yaml:"date" json:"date"`
	ReadTime       string   `yaml:"read_time" json:"readTime"`
	Category       string   `yaml:"category" json:"category"`
	Tags           []string `yaml:"tags" json:"tags,omitempty"`
	Topics         []string `yaml:"topics" json:"topics,omitempty"`
	FeaturedImage  string   `yaml:"featured_image,omitempty" json:"featuredImage,omitempty"`
	SEOTitle       string   `yaml:"seo_title,omitempty" json:"seoTitle,omitempty"`
	SEODescription string   `yaml:"seo_description,omitempty" json:"seoDescription,omitempty"`
	SEOKeywords    string   `yaml:"seo_keywords,omitempty" json:"seoKeywords,omitempty"`
	SourceSlug     string   `yaml:"source_slug,omitempty" json:"sourceSlug,omitempty"`
	Published      bool     `yaml:"published" json:"published"`
}

// StoryVideo is the video reference of a transformation story.
type StoryVideo struct {
	Src    string `yaml:"src" json:"src" validate:"required"`
	Poster string `yaml:"poster,omitempty" json:"poster,omitempty"`
}

// StoryQuote is a quote from a transformation story.
type StoryQuote struct {
	Text    string `yaml:"text" json:"text"`
	Context string `yaml:"context,omitempty" json:"context,omitempty"`
}

// StorySEO is the SEO block of a transformation story. Keywords is a comma list.
type StorySEO struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Keywords    string `yaml:"keywords,omitempty" json:"keywords,omitempty"`
}

// TransformationStory is a patient video story.
type TransformationStory struct {
	ID               string       `yaml:"id" json:"id" validate:"required"`
	Slug             string       `yaml:"slug" json:"slug" validate:"required"`
	PatientName      string       `yaml:"patient_name" json:"patientName"`
	Title            string       `yaml:"title" json:"title" validate:"required"`
	ShortDescription string       `yaml:"short_description" json:"shortDescription"`
	Video            StoryVideo   `yaml:"video" json:"video"`
	Location         string       `yaml:"location" json:"location"`
	Goal             string       `yaml:"goal" json:"goal"`
	KeyTakeaways     []string     `yaml:"key_takeaways" json:"keyTakeaways,omitempty"`
	Quotes           []StoryQuote `yaml:"quotes" json:"quotes,omitempty"`
	WhyChoseUs       []TitledText `yaml:"why_chose_us" json:"whyChoseUs,omitempty"`
	FAQs             []FAQ        `yaml:"faqs" json:"faqs,omitempty" validate:"dive"`
	SEO              StorySEO     `yaml:"seo" json:"seo"`
}

// PageMetadata is the route-level metadata authored for SPA routes.
// Keywords is a comma list.
type PageMetadata struct {
	Title       string `yaml:"title" json:"title" validate:"required"`
	Description string `yaml:"description" json:"description"`
	Keywords    string `yaml:"keywords,omitempty" json:"keywords,omitempty"`
	OGImage     string `yaml:"og_image,omitempty" json:"ogImage,omitempty"`
}

// FAQSet is a named group of FAQs that manual pages can reference.
type FAQSet struct {
	Name  string `yaml:"name" json:"name" validate:"required"`
	About string `yaml:"about" json:"about"`
	Items []FAQ  `yaml:"items" json:"items" validate:"dive"`
}

// Content is the full set of content registries for one generation run.
// It is assembled once by a ContentSource and never mutated afterwards.
type Content struct {
	Services      map[string]ServicePageConfig
	Locations     map[string]LocationPageConfig
	Posts         []BlogPost
	Stories       []TransformationStory
	RouteMetadata map[string]PageMetadata
	FAQSets       map[string]FAQSet
	ManualPages   []StaticRoute

	// ServiceOrder and LocationOrder record the authored order of the
	// registries. When empty, keys are returned sorted.
	ServiceOrder  []string
	LocationOrder []string
}

// PublishedPosts returns the posts with Published set, in source order.
func (c *Content) PublishedPosts() []BlogPost {
	out := make([]BlogPost, 0, len(c.Posts))
	for i := range c.Posts {
		if c.Posts[i].Published {
			out = append(out, c.Posts[i])
		}
	}
	return out
}

// PostBySlug finds a post by slug regardless of its published flag.
func (c *Content) PostBySlug(slug string) (*BlogPost, error) {
	for i := range c.Posts {
		if c.Posts[i].Slug == slug {
			post := c.Posts[i]
			return &post, nil
		}
	}
	return nil, ErrNotFound
}

// PostsByCategory returns published posts in the given category.
func (c *Content) PostsByCategory(category string) []BlogPost {
	var out []BlogPost
	for _, post := range c.PublishedPosts() {
		if post.Category == category {
			out = append(out, post)
		}
	}
	return out
}

// PostsByTag returns published posts carrying the given tag.
func (c *Content) PostsByTag(tag string) []BlogPost {
	var out []BlogPost
	for _, post := range c.PublishedPosts() {
		if containsString(post.Tags, tag) {
			out = append(out, post)
		}
	}
	return out
}

// RelatedPosts returns up to limit published posts sharing a category or tag with post.
func (c *Content) RelatedPosts(post BlogPost, limit int) []BlogPost {
	var out []BlogPost
	for _, candidate := range c.PublishedPosts() {
		if len(out) >= limit {
			break
		}
		if candidate.ID == post.ID {
			continue
		}
		if candidate.Category == post.Category || sharesAny(candidate.Tags, post.Tags) {
			out = append(out, candidate)
		}
	}
	return out
}

// Categories returns the distinct post categories in first-seen order.
func (c *Content) Categories() []string {
	var out []string
	seen := make(map[string]bool)
	for i := range c.Posts {
		if !seen[c.Posts[i].Category] {
			seen[c.Posts[i].Category] = true
			out = append(out, c.Posts[i].Category)
		}
	}
	return out
}

// Tags returns the distinct post tags in first-seen order.
func (c *Content) Tags() []string {
	var out []string
	seen := make(map[string]bool)
	for i := range c.Posts {
		for _, tag := range c.Posts[i].Tags {
			if !seen[tag] {
				seen[tag] = true
				out = append(out, tag)
			}
		}
	}
	return out
}

// ServiceSlugs returns the service registry keys in authored order.
func (c *Content) ServiceSlugs() []string {
	return orderedKeys(c.Services, c.ServiceOrder)
}

// LocationSlugs returns the location registry keys in authored order.
func (c *Content) LocationSlugs() []string {
	return orderedKeys(c.Locations, c.LocationOrder)
}

// RouteMetadataPaths returns the route metadata keys in sorted order.
func (c *Content) RouteMetadataPaths() []string {
	return sortedKeys(c.RouteMetadata)
}

// orderedKeys returns the keys of m listed in order, followed by any
// remaining keys in sorted order.
func orderedKeys[V any](m map[string]V, order []string) []string {
	keys := make([]string, 0, len(m))
	seen := make(map[string]bool, len(m))
	for _, k := range order {
		if _, ok := m[k]; ok && !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for _, k := range sortedKeys(m) {
		if !seen[k] {
			keys = append(keys, k)
		}
	}
	return keys
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func sharesAny(a, b []string) bool {
	for _, v := range a {
		if containsString(b, v) {
			return true
		}
	}
	return false
}
