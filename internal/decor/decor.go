// Package decor renders the decorative graphics of the page.
package decor

import (
	_ "embed"
	"fmt"
	"html/template"
)

//go:embed coder.svg
var coderSVG string

// Illustration is the inline hero artwork.
func Illustration() template.HTML {
	return template.HTML(coderSVG)
}

// Lottie renders a player for a pre-authored animation. It always loops,
// always autoplays and fills its container. An empty src renders nothing.
func Lottie(src string) template.HTML {
	if src == "" {
		return ""
	}
	return template.HTML(fmt.Sprintf(
		`<lottie-player src="%s" background="transparent" loop autoplay style="width:100%%;height:100%%"></lottie-player>`,
		template.HTMLEscapeString(src)))
}

// Icon renders an icon glyph by name.
func Icon(name string) template.HTML {
	return template.HTML(fmt.Sprintf(`<iconify-icon icon="%s" aria-hidden="true"></iconify-icon>`,
		template.HTMLEscapeString(name)))
}
