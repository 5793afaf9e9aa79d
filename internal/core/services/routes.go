package services

import (
	"strings"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
	"github.com/exquisite-dentistry/sitegen/internal/markup"
)

// DefaultNavLinks are appended to the link block of generated routes.
func DefaultNavLinks() []domain.Link {
	return []domain.Link{
		{Label: "Services", Href: "/services"},
		{Label: "About Dr. Aguil", Href: "/about"},
		{Label: "Smile Gallery", Href: "/smile-gallery"},
		{Label: "Testimonials", Href: "/testimonials"},
		{Label: "Contact", Href: "/contact"},
		{Label: "Blog", Href: "/blog"},
	}
}

// blogTopic groups the substrings that infer a topic and the links it adds.
type blogTopic struct {
	name    string
	matches []string
	links   []domain.Link
}

// blogTopics in the order their links are emitted.
var blogTopics = []blogTopic{
	{"veneer", []string{"veneer"}, []domain.Link{
		{Label: "Porcelain Veneers", Href: "/veneers"},
		{Label: "Smile Gallery", Href: "/smile-gallery"},
	}},
	{"implant", []string{"implant"}, []domain.Link{
		{Label: "Dental Implants", Href: "/dental-implants"},
	}},
	{"whitening", []string{"whitening"}, []domain.Link{
		{Label: "Teeth Whitening", Href: "/teeth-whitening"},
		{Label: "Zoom Whitening", Href: "/zoom-whitening"},
	}},
	{"invisalign", []string{"invisalign"}, []domain.Link{
		{Label: "Invisalign", Href: "/invisalign"},
	}},
	{"wedding", []string{"wedding"}, []domain.Link{
		{Label: "Wedding Smile Makeover", Href: "/wedding"},
	}},
	{"graduation", []string{"graduation"}, []domain.Link{
		{Label: "Graduation Smile Makeover", Href: "/graduation"},
	}},
	{"oral-health", []string{"oral", "cancer", "smoking"}, []domain.Link{
		{Label: "Teeth Cleaning & Exams", Href: "/teeth-cleaning"},
	}},
}

// BuildRoutes returns the static routes: manual pages, then one route per
// service, location, published blog post and transformation story.
// Routes are deduplicated by normalised path; the first occurrence wins.
func BuildRoutes(content *domain.Content) []domain.StaticRoute {
	var routes []domain.StaticRoute

	for i := range content.ManualPages {
		routes = append(routes, manualRoute(content, content.ManualPages[i]))
	}
	for _, slug := range content.ServiceSlugs() {
		cfg := content.Services[slug]
		routes = append(routes, serviceRoute(&cfg))
	}
	for _, slug := range content.LocationSlugs() {
		cfg := content.Locations[slug]
		routes = append(routes, locationRoute(&cfg))
	}
	for _, post := range content.PublishedPosts() {
		routes = append(routes, blogRoute(&post))
	}
	for i := range content.Stories {
		routes = append(routes, storyRoute(&content.Stories[i]))
	}

	return dedupeRoutes(routes)
}

func dedupeRoutes(routes []domain.StaticRoute) []domain.StaticRoute {
	seen := make(map[string]bool, len(routes))
	out := make([]domain.StaticRoute, 0, len(routes))
	for _, route := range routes {
		if !strings.HasPrefix(route.Path, "/") {
			route.Path = "/" + route.Path
		}
		key := domain.HrefKey(route.Path)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, route)
	}
	return out
}

func manualRoute(content *domain.Content, page domain.StaticRoute) domain.StaticRoute {
	if page.Kind == "" {
		page.Kind = domain.RouteKindPage
	}
	if set, ok := content.FAQSets[page.FAQSet]; ok && page.FAQSet != "" {
		page.FAQs = append(append([]domain.FAQ{}, page.FAQs...), set.Items...)
		if page.FAQAbout == "" {
			page.FAQAbout = set.About
		}
	}
	if page.NavLinks {
		page.Links = uniqueLinks(page.Links, DefaultNavLinks())
	}
	return page
}

func serviceRoute(cfg *domain.ServicePageConfig) domain.StaticRoute {
	title := cfg.SEO.Title
	if title == "" {
		title = cfg.Title
	}

	var sections []domain.RouteSection
	if items := titledItems(cfg.Benefits); len(items) > 0 {
		sections = append(sections, domain.RouteSection{Heading: "Benefits", Items: items})
	}
	if len(cfg.TreatmentSteps) > 0 {
		steps := make([]string, 0, len(cfg.TreatmentSteps))
		for _, step := range cfg.TreatmentSteps {
			steps = append(steps, joinTitled(step.Title, step.Detail))
		}
		sections = append(sections, domain.RouteSection{Heading: "Treatment Timeline", Items: steps})
	}

	return domain.StaticRoute{
		Kind:        domain.RouteKindService,
		Path:        "/" + cfg.Slug,
		Title:       title,
		Description: cfg.SEO.Description,
		H1:          cfg.Hero.Heading,
		Paragraphs:  firstN(cfg.Overview.Intro, 2),
		Sections:    sections,
		FAQs:        cfg.FAQs,
		FAQAbout:    cfg.Title,
		Breadcrumb:  cfg.Title,
		Links:       uniqueLinks(cfg.InternalLinks, DefaultNavLinks()),
		Procedure:   procedureFor(cfg),
	}
}

// procedureFor returns the service's procedure hints, named after the
// service when no name is authored.
func procedureFor(cfg *domain.ServicePageConfig) *domain.ProcedureInfo {
	if cfg.Procedure == nil {
		return nil
	}
	p := *cfg.Procedure
	if p.Name == "" {
		p.Name = cfg.Title
	}
	return &p
}

func locationRoute(cfg *domain.LocationPageConfig) domain.StaticRoute {
	var sections []domain.RouteSection
	if len(cfg.NeighborhoodHighlights) > 0 {
		sections = append(sections, domain.RouteSection{
			Heading: "Why " + cfg.CityLabel + " Chooses Us",
			Items:   cfg.NeighborhoodHighlights,
		})
	}
	if len(cfg.SignatureServices) > 0 {
		sections = append(sections, domain.RouteSection{Heading: "Signature Services", Items: cfg.SignatureServices})
	}
	if pl := cfg.PracticeLocation; pl != nil {
		sections = append(sections, domain.RouteSection{
			Heading:    pl.Heading,
			Paragraphs: nonBlank(pl.Description),
			Items:      pl.Highlights,
			Location:   true,
		})
	}

	return domain.StaticRoute{
		Kind:        domain.RouteKindLocation,
		Path:        "/" + cfg.Slug,
		Title:       cfg.SEO.Title,
		Description: cfg.SEO.Description,
		H1:          cfg.Hero.Heading,
		Paragraphs:  nonBlank(cfg.Hero.Subheading),
		Sections:    sections,
		FAQs:        cfg.FAQs,
		FAQAbout:    "Dentist near " + cfg.CityLabel,
		Breadcrumb:  cfg.CityLabel,
		Links:       uniqueLinks(cfg.RelatedServices, DefaultNavLinks()),
	}
}

func blogRoute(post *domain.BlogPost) domain.StaticRoute {
	title := post.SEOTitle
	if title == "" {
		title = post.Title
	}
	description := post.SEODescription
	if description == "" {
		description = post.Excerpt
	}
	paragraphs := markup.Paragraphs(post.Content, 2)
	if len(paragraphs) == 0 {
		paragraphs = nonBlank(post.Excerpt)
	}

	links := []domain.Link{{Label: "Back to Blog", Href: "/blog"}}
	links = append(links, RelatedTopicLinks(post)...)

	return domain.StaticRoute{
		Kind:        domain.RouteKindBlog,
		Path:        "/blog/" + post.Slug,
		Title:       title,
		Description: description,
		H1:          post.Title,
		Paragraphs:  paragraphs,
		Links:       uniqueLinks(links, DefaultNavLinks()),
		OGImage:     post.FeaturedImage,
		BlogPost: &domain.RouteBlogPost{
			Author:   post.Author,
			Date:     post.Date,
			Category: post.Category,
			Image:    post.FeaturedImage,
		},
	}
}

// BlogTopics returns the topics of a post: its explicit topics when it
// declares any, otherwise those inferred from title, category and tags.
func BlogTopics(post *domain.BlogPost) []string {
	var out []string
	if len(post.Topics) > 0 {
		declared := make(map[string]bool, len(post.Topics))
		for _, t := range post.Topics {
			declared[strings.ToLower(strings.TrimSpace(t))] = true
		}
		for _, topic := range blogTopics {
			if declared[topic.name] {
				out = append(out, topic.name)
			}
		}
		return out
	}

	haystack := strings.ToLower(post.Title + " " + post.Category + " " + strings.Join(post.Tags, " "))
	for _, topic := range blogTopics {
		for _, m := range topic.matches {
			if strings.Contains(haystack, m) {
				out = append(out, topic.name)
				break
			}
		}
	}
	return out
}

// RelatedTopicLinks returns the links of every topic of a post.
func RelatedTopicLinks(post *domain.BlogPost) []domain.Link {
	topics := make(map[string]bool)
	for _, t := range BlogTopics(post) {
		topics[t] = true
	}

	var links []domain.Link
	for _, topic := range blogTopics {
		if topics[topic.name] {
			links = append(links, topic.links...)
		}
	}
	return links
}

func storyRoute(story *domain.TransformationStory) domain.StaticRoute {
	title := story.SEO.Title
	if title == "" {
		title = story.Title
	}
	description := story.SEO.Description
	if description == "" {
		description = story.ShortDescription
	}

	var sections []domain.RouteSection
	if len(story.KeyTakeaways) > 0 {
		sections = append(sections, domain.RouteSection{Heading: "Key Takeaways", Items: story.KeyTakeaways})
	}
	if len(story.Quotes) > 0 {
		quotes := make([]string, 0, len(story.Quotes))
		for _, q := range story.Quotes {
			quote := "“" + q.Text + "”"
			if q.Context != "" {
				quote += " (" + q.Context + ")"
			}
			quotes = append(quotes, quote)
		}
		sections = append(sections, domain.RouteSection{Heading: "In Their Words", Items: quotes})
	}
	if items := titledItems(story.WhyChoseUs); len(items) > 0 {
		heading := "Why They Chose Us"
		if story.PatientName != "" {
			heading = "Why " + story.PatientName + " Chose Us"
		}
		sections = append(sections, domain.RouteSection{Heading: heading, Items: items})
	}

	links := []domain.Link{{Label: "All Transformation Stories", Href: "/transformation-stories"}}

	return domain.StaticRoute{
		Kind:        domain.RouteKindStory,
		Path:        "/transformation-stories/" + story.Slug,
		Title:       title,
		Description: description,
		H1:          story.Title,
		Paragraphs:  nonBlank(story.ShortDescription, story.Goal),
		Sections:    sections,
		FAQs:        story.FAQs,
		FAQAbout:    story.Title,
		Links:       uniqueLinks(links, DefaultNavLinks()),
		OGImage:     story.Video.Poster,
		Video: &domain.RouteVideo{
			Name:        story.Title,
			Description: description,
			Src:         story.Video.Src,
			Poster:      story.Video.Poster,
		},
	}
}

// uniqueLinks concatenates link lists, keeping the first link per href.
// Links without an href are dropped.
func uniqueLinks(lists ...[]domain.Link) []domain.Link {
	var out []domain.Link
	seen := make(map[string]bool)
	for _, list := range lists {
		for _, link := range list {
			if link.Href == "" || seen[link.Href] {
				continue
			}
			seen[link.Href] = true
			out = append(out, link)
		}
	}
	return out
}

func titledItems(items []domain.TitledText) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, joinTitled(item.Title, item.Description))
	}
	return out
}

func joinTitled(title, detail string) string {
	switch {
	case title == "":
		return detail
	case detail == "":
		return title
	default:
		return title + ": " + detail
	}
}

func firstN(values []string, n int) []string {
	values = nonBlank(values...)
	if len(values) > n {
		values = values[:n]
	}
	return values
}

func nonBlank(values ...string) []string {
	var out []string
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
