// Package cleaner normalises scraped comment text before it enters the catalog.
package cleaner

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	markdownLink = regexp.MustCompile(`\[[^\]]*\]\([^)]*\)`)
	whitespace   = regexp.MustCompile(`\s+`)
	htmlTag      = regexp.MustCompile(`</?[a-zA-Z][a-zA-Z0-9-]*(\s[^<>]*)?/?>`)
)

type Cleaner struct{}

// Clean removes markdown links, strips complete HTML tags, decodes HTML
// entities and collapses whitespace runs to a single space. A '<' that does
// not open a complete tag is kept as text.
func (c *Cleaner) Clean(text string) string {
	text = strings.NewReplacer("\r", " ", "\n", " ").Replace(text)
	text = markdownLink.ReplaceAllString(text, "")

	switch {
	case htmlTag.MatchString(text):
		text = stripHTML(escapeStrayBrackets(text))
	case strings.Contains(text, "&"):
		text = html.UnescapeString(text)
	}

	return strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
}

// escapeStrayBrackets rewrites every '<' outside a complete tag as &lt; so
// the HTML parser cannot read it as the start of an element.
func escapeStrayBrackets(text string) string {
	var b strings.Builder
	last := 0
	for _, loc := range htmlTag.FindAllStringIndex(text, -1) {
		b.WriteString(strings.ReplaceAll(text[last:loc[0]], "<", "&lt;"))
		b.WriteString(text[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(strings.ReplaceAll(text[last:], "<", "&lt;"))
	return b.String()
}

// stripHTML parses text as an HTML fragment and returns its text content.
// Entities such as &amp; are decoded by the parser.
func stripHTML(text string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return html.UnescapeString(text)
	}

	doc.Find("script,style").Remove()

	// Block elements run into each other in Text(), so pad them first.
	doc.Find("br,p,div,li").Each(func(i int, s *goquery.Selection) {
		s.AfterNodes(&html.Node{Type: html.TextNode, Data: " "})
	})

	return doc.Find("body").Text()
}
