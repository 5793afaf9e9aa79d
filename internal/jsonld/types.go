package jsonld

// Context is the schema.org JSON-LD context.
const Context = "https://schema.org"

// Document is a JSON-LD document holding a flat @graph of nodes.
type Document struct {
	Context string `json:"@context"`
	Graph   []any  `json:"@graph"`
}

// Ref points at a node defined elsewhere in the graph.
type Ref struct {
	ID string `json:"@id"`
}

// Thing is a minimally typed, named node.
type Thing struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// PostalAddress is a schema.org postal address.
type PostalAddress struct {
	Type            string `json:"@type"`
	StreetAddress   string `json:"streetAddress"`
	AddressLocality string `json:"addressLocality"`
	AddressRegion   string `json:"addressRegion"`
	PostalCode      string `json:"postalCode"`
	AddressCountry  string `json:"addressCountry"`
}

// GeoCoordinates is a latitude/longitude pair.
type GeoCoordinates struct {
	Type      string  `json:"@type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// OpeningHours is one opening hours specification.
type OpeningHours struct {
	Type      string   `json:"@type"`
	DayOfWeek []string `json:"dayOfWeek"`
	Opens     string   `json:"opens"`
	Closes    string   `json:"closes"`
}

// Business is the practice entity.
type Business struct {
	Type                      []string       `json:"@type"`
	ID                        string         `json:"@id"`
	Name                      string         `json:"name"`
	AlternateName             string         `json:"alternateName,omitempty"`
	Description               string         `json:"description,omitempty"`
	URL                       string         `json:"url"`
	Telephone                 string         `json:"telephone,omitempty"`
	Email                     string         `json:"email,omitempty"`
	PriceRange                string         `json:"priceRange,omitempty"`
	Address                   PostalAddress  `json:"address"`
	Geo                       GeoCoordinates `json:"geo"`
	HasMap                    string         `json:"hasMap,omitempty"`
	OpeningHoursSpecification []OpeningHours `json:"openingHoursSpecification,omitempty"`
	AreaServed                []Thing        `json:"areaServed,omitempty"`
	Image                     []string       `json:"image,omitempty"`
	Logo                      string         `json:"logo,omitempty"`
	SameAs                    []string       `json:"sameAs,omitempty"`
}

// Person is the doctor entity.
type Person struct {
	Type        string   `json:"@type"`
	ID          string   `json:"@id,omitempty"`
	Name        string   `json:"name"`
	JobTitle    string   `json:"jobTitle,omitempty"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty"`
	Image       string   `json:"image,omitempty"`
	WorksFor    *Ref     `json:"worksFor,omitempty"`
	KnowsAbout  []string `json:"knowsAbout,omitempty"`
	AlumniOf    []Thing  `json:"alumniOf,omitempty"`
	MemberOf    []Thing  `json:"memberOf,omitempty"`
}

// SearchAction is the site search entry point.
type SearchAction struct {
	Type       string `json:"@type"`
	Target     string `json:"target"`
	QueryInput string `json:"query-input"`
}

// WebSite is the site entity.
type WebSite struct {
	Type            string       `json:"@type"`
	ID              string       `json:"@id"`
	Name            string       `json:"name"`
	AlternateName   string       `json:"alternateName,omitempty"`
	URL             string       `json:"url"`
	Description     string       `json:"description,omitempty"`
	Publisher       Ref          `json:"publisher"`
	PotentialAction SearchAction `json:"potentialAction"`
	InLanguage      string       `json:"inLanguage"`
}

// WebPage describes the rendered page itself.
type WebPage struct {
	Type        string `json:"@type"`
	ID          string `json:"@id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
	IsPartOf    Ref    `json:"isPartOf"`
	Provider    Ref    `json:"provider"`
	InLanguage  string `json:"inLanguage"`
}

// ListItem is one breadcrumb position.
type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

// BreadcrumbList is the breadcrumb trail of a page.
type BreadcrumbList struct {
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

// Answer is the accepted answer of a question.
type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// Question is one FAQ entry.
type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

// FAQPage lists the questions answered on a page.
type FAQPage struct {
	Type       string     `json:"@type"`
	About      Thing      `json:"about"`
	MainEntity []Question `json:"mainEntity"`
	Provider   Ref        `json:"provider"`
}

// HowToStep is one step of a procedure.
type HowToStep struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Text     string `json:"text"`
}

// MedicalProcedure describes a treatment.
type MedicalProcedure struct {
	Context       string      `json:"@context,omitempty"`
	Type          string      `json:"@type"`
	Name          string      `json:"name"`
	Description   string      `json:"description,omitempty"`
	URL           string      `json:"url"`
	ProcedureType string      `json:"procedureType,omitempty"`
	BodyLocation  *Thing      `json:"bodyLocation,omitempty"`
	Provider      any         `json:"provider"`
	Performer     *Ref        `json:"performer,omitempty"`
	RecoveryTime  string      `json:"recoveryTime,omitempty"`
	PriceRange    string      `json:"priceRange,omitempty"`
	HowPerformed  []HowToStep `json:"howPerformed,omitempty"`
}

// BlogPosting describes a blog article.
type BlogPosting struct {
	Type             string `json:"@type"`
	Headline         string `json:"headline"`
	Description      string `json:"description,omitempty"`
	URL              string `json:"url"`
	DatePublished    string `json:"datePublished,omitempty"`
	Author           Person `json:"author"`
	Publisher        Ref    `json:"publisher"`
	Image            string `json:"image,omitempty"`
	ArticleSection   string `json:"articleSection,omitempty"`
	MainEntityOfPage Ref    `json:"mainEntityOfPage"`
}

// VideoObject describes a patient story video.
type VideoObject struct {
	Type         string `json:"@type"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	ContentURL   string `json:"contentUrl"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	Publisher    Ref    `json:"publisher"`
}

// LocalDentist is the standalone Dentist node of a location fallback page.
type LocalDentist struct {
	Context   string        `json:"@context"`
	Type      string        `json:"@type"`
	Name      string        `json:"name"`
	URL       string        `json:"url"`
	Telephone string        `json:"telephone"`
	Address   PostalAddress `json:"address"`
}
