package content

import (
	"bytes"
	"html/template"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// About is the rendered About section.
type About struct {
	Title string
	Loves []string
	Body  template.HTML
}

type aboutMeta struct {
	Title string   `yaml:"title"`
	Loves []string `yaml:"loves"`
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// ParseAbout renders about.md. The front matter carries the section title and
// the "What I Love" tiles; the body is markdown.
func ParseAbout(raw []byte) (About, error) {
	var meta aboutMeta
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		return About{}, err
	}

	var buf bytes.Buffer
	if err := markdown.Convert(body, &buf); err != nil {
		return About{}, err
	}

	title := meta.Title
	if title == "" {
		title = "About Me"
	}
	return About{
		Title: title,
		Loves: meta.Loves,
		Body:  template.HTML(buf.String()),
	}, nil
}
