package jsonld

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
	"github.com/exquisite-dentistry/sitegen/internal/seo"
)

func newTestBuilder() (*Builder, *seo.Builder) {
	settings := domain.DefaultAppSettings()
	urls := seo.NewBuilder(settings.Site, settings.SEO)
	return NewBuilder(urls, settings.SEO, DefaultPractice()), urls
}

// graphTypes decodes a document and returns the @type of each node.
func graphTypes(t *testing.T, doc Document) []string {
	t.Helper()
	data, err := Marshal(doc)
	require.NoError(t, err)

	var decoded struct {
		Graph []map[string]any `json:"@graph"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	types := make([]string, 0, len(decoded.Graph))
	for _, node := range decoded.Graph {
		switch v := node["@type"].(type) {
		case string:
			types = append(types, v)
		case []any:
			parts := make([]string, 0, len(v))
			for _, p := range v {
				parts = append(parts, p.(string))
			}
			types = append(types, strings.Join(parts, ","))
		}
	}
	return types
}

func TestGraph_Root(t *testing.T) {
	b, urls := newTestBuilder()
	route := &domain.StaticRoute{Kind: domain.RouteKindPage, Path: "/", Title: "Home", H1: "Home"}

	doc := b.Graph(route, urls.Meta(route))

	assert.Equal(t, Context, doc.Context)
	assert.Equal(t, []string{"LocalBusiness,Dentist,MedicalBusiness", "WebSite", "WebPage", "Person"}, graphTypes(t, doc))
}

func TestGraph_ContactHasNoDoctor(t *testing.T) {
	b, urls := newTestBuilder()
	route := &domain.StaticRoute{Kind: domain.RouteKindPage, Path: "/contact", Title: "Contact", H1: "Contact Us"}

	doc := b.Graph(route, urls.Meta(route))

	assert.Equal(t, []string{"LocalBusiness,Dentist,MedicalBusiness", "WebSite", "WebPage", "BreadcrumbList"}, graphTypes(t, doc))
}

func TestGraph_ServiceWithFAQsAndProcedure(t *testing.T) {
	b, urls := newTestBuilder()
	route := &domain.StaticRoute{
		Kind:      domain.RouteKindService,
		Path:      "/teeth-cleaning",
		Title:     "Teeth Cleaning",
		H1:        "Teeth Cleaning",
		FAQs:      []domain.FAQ{{Question: "How often?", Answer: "Twice a year."}},
		FAQAbout:  "Teeth Cleaning",
		Procedure: &domain.ProcedureInfo{ProcedureType: "Preventive", BodyLocation: "Teeth"},
	}

	doc := b.Graph(route, urls.Meta(route))

	assert.Equal(t,
		[]string{"LocalBusiness,Dentist,MedicalBusiness", "WebSite", "WebPage", "BreadcrumbList", "FAQPage", "MedicalProcedure"},
		graphTypes(t, doc))

	faq, ok := doc.Graph[4].(FAQPage)
	require.True(t, ok)
	assert.Equal(t, "Teeth Cleaning", faq.About.Name)
	assert.Equal(t, "https://exquisitedentistryla.com/#business", faq.Provider.ID)

	mp, ok := doc.Graph[5].(MedicalProcedure)
	require.True(t, ok)
	assert.Equal(t, "Teeth Cleaning", mp.Name)
	assert.Equal(t, "https://exquisitedentistryla.com/teeth-cleaning/", mp.URL)
	assert.Equal(t, "https://exquisitedentistryla.com/#doctor", mp.Performer.ID)
	require.NotNil(t, mp.BodyLocation)
	assert.Equal(t, "BodySystem", mp.BodyLocation.Type)
}

func TestGraph_BlogPost(t *testing.T) {
	b, urls := newTestBuilder()
	route := &domain.StaticRoute{
		Kind:     domain.RouteKindBlog,
		Path:     "/blog/veneer-care",
		Title:    "Veneer Care",
		H1:       "Veneer Care",
		BlogPost: &domain.RouteBlogPost{Author: "Dr. Alexie Aguil", Date: "2025-01-15", Category: "Cosmetic"},
	}

	doc := b.Graph(route, urls.Meta(route))

	types := graphTypes(t, doc)
	assert.Contains(t, types, "BlogPosting")
	assert.NotContains(t, types, "Person")

	post, ok := doc.Graph[len(doc.Graph)-1].(BlogPosting)
	require.True(t, ok)
	assert.Equal(t, "2025-01-15", post.DatePublished)
	assert.Equal(t, "Dr. Alexie Aguil", post.Author.Name)
	assert.Equal(t, "https://exquisitedentistryla.com/blog/veneer-care/#webpage", post.MainEntityOfPage.ID)
}

func TestGraph_StoryVideo(t *testing.T) {
	b, urls := newTestBuilder()
	route := &domain.StaticRoute{
		Kind:  domain.RouteKindStory,
		Path:  "/transformation-stories/anna",
		Title: "Anna",
		H1:    "Anna",
		Video: &domain.RouteVideo{Name: "Anna", Src: "/videos/anna.mp4", Poster: "https://cdn.example.com/anna.jpg"},
	}

	doc := b.Graph(route, urls.Meta(route))

	video, ok := doc.Graph[len(doc.Graph)-1].(VideoObject)
	require.True(t, ok)
	assert.Equal(t, "https://exquisitedentistryla.com/videos/anna.mp4", video.ContentURL)
	assert.Equal(t, "https://cdn.example.com/anna.jpg", video.ThumbnailURL)
}

func TestBreadcrumbs(t *testing.T) {
	b, _ := newTestBuilder()

	assert.Nil(t, b.Breadcrumbs(&domain.StaticRoute{Path: "/"}))

	list := b.Breadcrumbs(&domain.StaticRoute{Kind: domain.RouteKindBlog, Path: "/blog/veneer-care", H1: "Veneer Care"})
	require.NotNil(t, list)
	require.Len(t, list.ItemListElement, 3)
	assert.Equal(t, ListItem{Type: "ListItem", Position: 1, Name: "Home", Item: "https://exquisitedentistryla.com/"}, list.ItemListElement[0])
	assert.Equal(t, "https://exquisitedentistryla.com/blog/", list.ItemListElement[1].Item)
	assert.Equal(t, 3, list.ItemListElement[2].Position)
	assert.Equal(t, "https://exquisitedentistryla.com/blog/veneer-care/", list.ItemListElement[2].Item)
}

func TestFAQPage_DefaultAbout(t *testing.T) {
	b, _ := newTestBuilder()

	faq := b.FAQPage([]domain.FAQ{{Question: "Q", Answer: "A"}}, "")

	assert.Equal(t, "Cosmetic Dentistry Services", faq.About.Name)
	require.Len(t, faq.MainEntity, 1)
	assert.Equal(t, "A", faq.MainEntity[0].AcceptedAnswer.Text)
}

func TestWebSite_SearchAction(t *testing.T) {
	b, _ := newTestBuilder()

	site := b.WebSite()

	assert.Equal(t, "https://exquisitedentistryla.com/#website", site.ID)
	assert.Equal(t, "https://exquisitedentistryla.com/search/?q={search_term_string}", site.PotentialAction.Target)
}

func TestDoctor(t *testing.T) {
	b, _ := newTestBuilder()

	doctor := b.Doctor()

	assert.Equal(t, "https://exquisitedentistryla.com/#doctor", doctor.ID)
	assert.Equal(t, "https://exquisitedentistryla.com/about/", doctor.URL)
	assert.Equal(t, "https://exquisitedentistryla.com/#business", doctor.WorksFor.ID)
}

func TestMarshal_EscapesScriptTerminator(t *testing.T) {
	data, err := Marshal(Thing{Type: "Thing", Name: "</script><b>"})

	require.NoError(t, err)
	assert.NotContains(t, string(data), "</script>")
	assert.Contains(t, string(data), `\u003c/script\u003e`)
}

func TestServiceProcedure(t *testing.T) {
	b, _ := newTestBuilder()
	service := &domain.ServicePageConfig{
		Slug:           "teeth-cleaning",
		Title:          "Teeth Cleaning",
		SEO:            domain.SEOFields{Description: "Preventive care."},
		TreatmentSteps: []domain.TreatmentStep{{Title: "Exam", Detail: "Check-up."}, {Title: "Polish", Detail: "Shine."}},
		Procedure:      &domain.ProcedureInfo{ProcedureType: "Preventive"},
	}

	mp := b.ServiceProcedure(service, "https://exquisitedentistryla.com/teeth-cleaning/")

	assert.Equal(t, Context, mp.Context)
	assert.Equal(t, "Preventive", mp.ProcedureType)
	require.Len(t, mp.HowPerformed, 2)
	assert.Equal(t, 2, mp.HowPerformed[1].Position)
	provider, ok := mp.Provider.(Thing)
	require.True(t, ok)
	assert.Equal(t, "Dentist", provider.Type)
}

func TestLocationDentist(t *testing.T) {
	b, _ := newTestBuilder()
	location := &domain.LocationPageConfig{Slug: "beverly-hills-dentist", CityLabel: "Beverly Hills"}

	node := b.LocationDentist(location, "https://exquisitedentistryla.com/beverly-hills-dentist/")

	assert.Equal(t, "Dentist", node.Type)
	assert.Equal(t, "Exquisite Dentistry – Beverly Hills", node.Name)
	assert.Equal(t, "+1-323-272-2388", node.Telephone)
	assert.Equal(t, "Beverly Hills", node.Address.AddressLocality)
}
