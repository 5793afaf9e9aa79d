// Package jsonld builds the schema.org JSON-LD graphs embedded in
// pre-rendered pages and fallback documents.
package jsonld

import (
	"encoding/json"
	"fmt"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
	"github.com/exquisite-dentistry/sitegen/internal/seo"
)

const (
	defaultFAQAbout = "Cosmetic Dentistry Services"
	inLanguage      = "en-US"
)

// Builder assembles per-route graphs from the shared practice entities.
type Builder struct {
	urls     *seo.Builder
	limits   domain.SEOSettings
	practice Practice
}

// NewBuilder creates a graph builder.
func NewBuilder(urls *seo.Builder, limits domain.SEOSettings, practice Practice) *Builder {
	return &Builder{urls: urls, limits: limits, practice: practice}
}

// Graph returns the @graph document of a route. Business, website and web
// page nodes are always present; the rest depend on the route's content.
func (b *Builder) Graph(route *domain.StaticRoute, meta seo.Meta) Document {
	graph := []any{b.Business(), b.WebSite(), b.webPage(meta)}

	if b.limits.IncludesDoctor(route.Path) {
		graph = append(graph, b.Doctor())
	}
	if crumbs := b.Breadcrumbs(route); crumbs != nil {
		graph = append(graph, *crumbs)
	}
	if len(route.FAQs) > 0 {
		graph = append(graph, b.FAQPage(route.FAQs, route.FAQAbout))
	}
	if route.Procedure != nil {
		graph = append(graph, b.procedure(route, meta))
	}
	if route.BlogPost != nil {
		graph = append(graph, b.blogPosting(route, meta))
	}
	if route.Video != nil {
		graph = append(graph, b.video(route.Video))
	}

	return Document{Context: Context, Graph: graph}
}

// Business returns the practice node.
func (b *Builder) Business() Business {
	site := b.urls.Site()
	p := b.practice

	areas := make([]Thing, 0, len(p.AreaServed))
	for _, city := range p.AreaServed {
		areas = append(areas, Thing{Type: "City", Name: city})
	}

	return Business{
		Type:                      []string{"LocalBusiness", "Dentist", "MedicalBusiness"},
		ID:                        b.id(businessFragment),
		Name:                      p.Name,
		AlternateName:             p.AlternateName,
		Description:               p.Description,
		URL:                       b.urls.Canonical("/"),
		Telephone:                 site.Phone,
		Email:                     p.Email,
		PriceRange:                p.PriceRange,
		Address:                   p.Address,
		Geo:                       p.Geo,
		HasMap:                    p.MapURL,
		OpeningHoursSpecification: p.Hours,
		AreaServed:                areas,
		Image:                     p.Images,
		Logo:                      p.Logo,
		SameAs:                    p.SameAs,
	}
}

// Doctor returns the doctor node.
func (b *Builder) Doctor() Person {
	doctor := b.practice.Doctor
	doctor.ID = b.id(doctorFragment)
	doctor.URL = b.urls.Canonical("/about")
	doctor.WorksFor = &Ref{ID: b.id(businessFragment)}
	return doctor
}

// WebSite returns the site node with its search action.
func (b *Builder) WebSite() WebSite {
	site := b.urls.Site()
	return WebSite{
		Type:          "WebSite",
		ID:            b.id(websiteFragment),
		Name:          site.BrandName,
		AlternateName: site.BrandSuffix,
		URL:           b.urls.Canonical("/"),
		Description:   b.practice.Description,
		Publisher:     Ref{ID: b.id(businessFragment)},
		PotentialAction: SearchAction{
			Type:       "SearchAction",
			Target:     b.urls.Canonical("/search") + "?q={search_term_string}",
			QueryInput: "required name=search_term_string",
		},
		InLanguage: inLanguage,
	}
}

// Breadcrumbs returns the BreadcrumbList of a route, or nil for the root.
func (b *Builder) Breadcrumbs(route *domain.StaticRoute) *BreadcrumbList {
	trail := route.BreadcrumbTrail()
	if len(trail) == 0 {
		return nil
	}
	items := make([]ListItem, 0, len(trail))
	for i, crumb := range trail {
		items = append(items, ListItem{
			Type:     "ListItem",
			Position: i + 1,
			Name:     crumb.Name,
			Item:     b.urls.Canonical(crumb.Path),
		})
	}
	return &BreadcrumbList{Type: "BreadcrumbList", ItemListElement: items}
}

// FAQPage returns the FAQPage node for a set of questions.
func (b *Builder) FAQPage(faqs []domain.FAQ, about string) FAQPage {
	if about == "" {
		about = defaultFAQAbout
	}
	questions := make([]Question, 0, len(faqs))
	for _, faq := range faqs {
		questions = append(questions, Question{
			Type:           "Question",
			Name:           faq.Question,
			AcceptedAnswer: Answer{Type: "Answer", Text: faq.Answer},
		})
	}
	return FAQPage{
		Type:       "FAQPage",
		About:      Thing{Type: "Thing", Name: about},
		MainEntity: questions,
		Provider:   Ref{ID: b.id(businessFragment)},
	}
}

func (b *Builder) webPage(meta seo.Meta) WebPage {
	return WebPage{
		Type:        "WebPage",
		ID:          meta.Canonical + "#webpage",
		Name:        meta.Title,
		Description: meta.Description,
		URL:         meta.Canonical,
		IsPartOf:    Ref{ID: b.id(websiteFragment)},
		Provider:    Ref{ID: b.id(businessFragment)},
		InLanguage:  inLanguage,
	}
}

func (b *Builder) procedure(route *domain.StaticRoute, meta seo.Meta) MedicalProcedure {
	info := route.Procedure
	name := info.Name
	if name == "" {
		name = route.H1
	}
	mp := MedicalProcedure{
		Type:          "MedicalProcedure",
		Name:          name,
		Description:   meta.Description,
		URL:           meta.Canonical,
		ProcedureType: info.ProcedureType,
		Provider:      Ref{ID: b.id(businessFragment)},
		Performer:     &Ref{ID: b.id(doctorFragment)},
		RecoveryTime:  info.RecoveryTime,
		PriceRange:    info.PriceRange,
	}
	if info.BodyLocation != "" {
		mp.BodyLocation = &Thing{Type: "BodySystem", Name: info.BodyLocation}
	}
	return mp
}

func (b *Builder) blogPosting(route *domain.StaticRoute, meta seo.Meta) BlogPosting {
	post := route.BlogPost
	return BlogPosting{
		Type:             "BlogPosting",
		Headline:         route.H1,
		Description:      meta.Description,
		URL:              meta.Canonical,
		DatePublished:    post.Date,
		Author:           Person{Type: "Person", Name: post.Author},
		Publisher:        Ref{ID: b.id(businessFragment)},
		Image:            b.urls.Absolute(post.Image),
		ArticleSection:   post.Category,
		MainEntityOfPage: Ref{ID: meta.Canonical + "#webpage"},
	}
}

func (b *Builder) video(v *domain.RouteVideo) VideoObject {
	return VideoObject{
		Type:         "VideoObject",
		Name:         v.Name,
		Description:  v.Description,
		ContentURL:   b.urls.Absolute(v.Src),
		ThumbnailURL: b.urls.Absolute(v.Poster),
		Publisher:    Ref{ID: b.id(businessFragment)},
	}
}

func (b *Builder) id(fragment string) string {
	return nodeID(b.urls.Site().BaseURL, fragment)
}

// Marshal encodes a node for embedding in a script element.
// HTML-significant characters are escaped so the payload cannot close the element.
func Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal json-ld: %w", err)
	}
	return data, nil
}
