package markup

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
	"github.com/exquisite-dentistry/sitegen/internal/seo"
)

const (
	jsonLDType = "application/ld+json"
	headIndent = "\n    "
)

// managedTag matches one kind of head element that is owned by the injector.
// Every match is removed before the fresh block is appended.
type managedTag struct {
	name  string
	match func(n *html.Node) bool
}

var managedTags = []managedTag{
	{"title", func(n *html.Node) bool { return n.DataAtom == atom.Title }},
	{"meta description", func(n *html.Node) bool {
		return n.DataAtom == atom.Meta && strings.EqualFold(attr(n, "name"), "description")
	}},
	{"meta og:*", func(n *html.Node) bool {
		return n.DataAtom == atom.Meta && hasFoldPrefix(attr(n, "property"), "og:")
	}},
	{"meta twitter:*", func(n *html.Node) bool {
		return n.DataAtom == atom.Meta && hasFoldPrefix(attr(n, "name"), "twitter:")
	}},
	{"link canonical", func(n *html.Node) bool {
		return n.DataAtom == atom.Link && strings.EqualFold(attr(n, "rel"), "canonical")
	}},
	{"json-ld script", func(n *html.Node) bool {
		return n.DataAtom == atom.Script && strings.EqualFold(strings.TrimSpace(attr(n, "type")), jsonLDType)
	}},
}

// Document is a parsed HTML template.
type Document struct {
	root *html.Node
}

// Parse parses a full HTML document.
func Parse(src []byte) (*Document, error) {
	root, err := html.Parse(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	return &Document{root: root}, nil
}

// Render serialises the document.
func (d *Document) Render() ([]byte, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, d.root); err != nil {
		return nil, fmt.Errorf("render document: %w", err)
	}
	return buf.Bytes(), nil
}

// InjectHead removes every managed head element and appends a fresh block in
// fixed order: title, description, canonical, Open Graph, Twitter and the
// JSON-LD script. Injecting twice yields the same document.
func (d *Document) InjectHead(meta seo.Meta, jsonLD []byte) error {
	head := findFirst(d.root, func(n *html.Node) bool { return n.DataAtom == atom.Head })
	if head == nil {
		return domain.ErrHeadNotFound
	}

	removeManaged(head)

	block := []*html.Node{
		element(atom.Title, nil, text(meta.Title)),
		element(atom.Meta, []html.Attribute{{Key: "name", Val: "description"}, {Key: "content", Val: meta.Description}}),
		element(atom.Link, []html.Attribute{{Key: "rel", Val: "canonical"}, {Key: "href", Val: meta.Canonical}}),
		property("og:type", meta.OGType),
		property("og:title", meta.Title),
		property("og:description", meta.Description),
		property("og:url", meta.Canonical),
		property("og:image", meta.Image),
		property("og:site_name", meta.SiteName),
		named("twitter:card", meta.TwitterCard),
		named("twitter:title", meta.Title),
		named("twitter:description", meta.Description),
		named("twitter:image", meta.Image),
	}
	if len(jsonLD) > 0 {
		block = append(block, element(atom.Script, []html.Attribute{{Key: "type", Val: jsonLDType}}, text(string(jsonLD))))
	}

	// Insert before trailing whitespace so the closing tag keeps its indentation.
	anchor := head.LastChild
	if anchor == nil || !isBlank(anchor) {
		anchor = nil
	}
	for _, n := range block {
		head.InsertBefore(text(headIndent), anchor)
		head.InsertBefore(n, anchor)
	}
	return nil
}

// removeManaged detaches managed elements together with the whitespace
// text node directly before each of them.
func removeManaged(head *html.Node) {
	for c := head.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.ElementNode && isManaged(c) {
			if prev := c.PrevSibling; prev != nil && isBlank(prev) {
				head.RemoveChild(prev)
			}
			head.RemoveChild(c)
		}
		c = next
	}
}

func isManaged(n *html.Node) bool {
	for _, tag := range managedTags {
		if tag.match(n) {
			return true
		}
	}
	return false
}

func property(name, content string) *html.Node {
	return element(atom.Meta, []html.Attribute{{Key: "property", Val: name}, {Key: "content", Val: content}})
}

func named(name, content string) *html.Node {
	return element(atom.Meta, []html.Attribute{{Key: "name", Val: name}, {Key: "content", Val: content}})
}

func element(a atom.Atom, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func isBlank(n *html.Node) bool {
	return n.Type == html.TextNode && strings.TrimSpace(n.Data) == ""
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}
