package content

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
)

// Markdown turns blog post files into BlogPost values.
// Front matter fills the post fields and the body is rendered to HTML.
type Markdown struct {
	engine goldmark.Markdown
	policy *bluemonday.Policy
}

// NewMarkdown creates a renderer with GitHub flavoured extensions.
func NewMarkdown() *Markdown {
	return &Markdown{
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		policy: bluemonday.UGCPolicy(),
	}
}

// Post parses a Markdown document with YAML front matter.
func (m *Markdown) Post(data []byte) (*domain.BlogPost, error) {
	var post domain.BlogPost
	body, err := frontmatter.MustParse(bytes.NewReader(data), &post)
	if err != nil {
		return nil, fmt.Errorf("front matter: %w", err)
	}

	html, err := m.Render(body)
	if err != nil {
		return nil, err
	}
	post.Content = html
	return &post, nil
}

// Render converts Markdown to sanitized HTML.
func (m *Markdown) Render(source []byte) (string, error) {
	var buf bytes.Buffer
	if err := m.engine.Convert(source, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.TrimSpace(m.policy.Sanitize(buf.String())), nil
}
