// Package markup converts model output to stored HTML and HTML back to text.
package markup

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	translationPreface = regexp.MustCompile(`(?i)^\s*here(?: is|'s) (?:the|a|your) [^\n]*translation[^\n]*\n+`)
	labelPrefix        = regexp.MustCompile(`(?im)^[ \t]*\**[ \t]*(?:TITLE|SLUG|CATEGORY|EXCERPT|CONTENT)[ \t]*\**[ \t]*:[ \t]*\**[ \t]*`)
	tightHeading       = regexp.MustCompile(`(?m)^(#{1,3})([^#\s])`)
	whitespace         = regexp.MustCompile(`[ \t\f\v\r]+`)
	blankLines         = regexp.MustCompile(`\n\s*\n+`)
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
		html.WithXHTML(),
		html.WithUnsafe(),
	),
)

// Normalize turns generated text into the HTML stored on an article. It drops
// translation prefaces and section labels the model echoed back, then renders
// the remaining Markdown. Inline HTML such as interleaved images is kept.
func Normalize(text string) string {
	s := strings.ReplaceAll(text, "\r\n", "\n")
	s = translationPreface.ReplaceAllString(s, "")
	s = labelPrefix.ReplaceAllString(s, "")
	s = tightHeading.ReplaceAllString(s, "$1 $2")
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := md.Convert([]byte(s), &buf); err != nil {
		return s
	}
	return strings.TrimSpace(buf.String())
}

// PlainText strips tags from an HTML fragment. Block elements become paragraph
// breaks and runs of whitespace collapse to one space.
func PlainText(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return collapse(fragment)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return collapse(fragment)
	}
	doc.Find("script, style").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("p, div, li, h1, h2, h3, h4, h5, h6, blockquote").AppendHtml("\n\n")

	return collapse(doc.Text())
}

func collapse(s string) string {
	s = whitespace.ReplaceAllString(s, " ")
	s = blankLines.ReplaceAllString(s, "\n\n")

	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
