// Package markup renders page bodies and fallback documents and injects
// head metadata and content into the SPA template.
//
// The template is handled as a parsed document (golang.org/x/net/html)
// rather than with string substitution, so every managed head element
// appears exactly once no matter how often a document is processed.
package markup

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("markup").ParseFS(templateFS, "templates/*.tmpl"))

// Link is a rendered hyperlink. Hrefs come from authored content and are
// trusted, so tel: and mailto: links survive escaping.
type Link struct {
	Label string
	Href  template.URL
}

// Crumb is a rendered breadcrumb.
type Crumb struct {
	Name    string
	Href    template.URL
	Current bool
}

// Visit is the practice contact block shown on pages without a location section.
type Visit struct {
	Name           string
	Street         string
	Locality       string
	Phone          string
	PhoneHref      template.URL
	DirectionsHref template.URL
}

// Body is the view model of the markup placed inside #root.
type Body struct {
	Breadcrumbs []Crumb
	H1          string
	Paragraphs  []string
	Sections    []domain.RouteSection
	FAQs        []domain.FAQ
	Visit       *Visit
	Links       []Link
}

// NewBody builds the body view of a route. The visit block is dropped when
// the route has its own location section.
func NewBody(route *domain.StaticRoute, visit *Visit) Body {
	body := Body{
		H1:         route.H1,
		Paragraphs: nonEmpty(route.Paragraphs),
		Sections:   route.Sections,
		FAQs:       route.FAQs,
		Links:      Links(route.Links),
	}
	trail := route.BreadcrumbTrail()
	for i, c := range trail {
		body.Breadcrumbs = append(body.Breadcrumbs, Crumb{
			Name:    c.Name,
			Href:    template.URL(domain.NormalizeInternalHref(c.Path)), //nolint:gosec // authored paths
			Current: i == len(trail)-1,
		})
	}
	if visit != nil && !route.HasLocationSection() {
		body.Visit = visit
	}
	return body
}

// Links converts content links to rendered links.
func Links(links []domain.Link) []Link {
	out := make([]Link, 0, len(links))
	for _, l := range links {
		out = append(out, Link{Label: l.Label, Href: template.URL(l.Href)}) //nolint:gosec // authored hrefs
	}
	return out
}

// RenderBody executes the body template.
func RenderBody(body Body) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "body", body); err != nil {
		return "", fmt.Errorf("render body: %w", err)
	}
	return buf.String(), nil
}

// ReplaceRoot replaces the children of the first <div id="root"> with the
// given markup. Returns domain.ErrRootNotFound when the element is missing.
func (d *Document) ReplaceRoot(markup string) error {
	root := findFirst(d.root, func(n *html.Node) bool {
		return n.DataAtom == atom.Div && attr(n, "id") == "root"
	})
	if root == nil {
		return domain.ErrRootNotFound
	}

	for c := root.FirstChild; c != nil; {
		next := c.NextSibling
		root.RemoveChild(c)
		c = next
	}

	nodes, err := html.ParseFragment(strings.NewReader(markup), root)
	if err != nil {
		return fmt.Errorf("parse body: %w", err)
	}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return nil
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
