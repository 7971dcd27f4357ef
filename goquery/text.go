// Package goquery provides goquery-based implementations of
// riinguist.DefinitionExtractor for the riichi.wiki terminology and yaku
// pages.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Text returns the visible text of the selection: all descendant text
// nodes concatenated, with every whitespace run collapsed to a single
// space and the ends trimmed. Comments are not text nodes and are skipped.
func Text(sel *goquery.Selection) string {
	var sb strings.Builder
	for _, n := range sel.Nodes {
		writeText(&sb, n)
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

func writeText(sb *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(sb, c)
	}
}

// parse builds a goquery document from raw HTML.
func parse(raw string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(raw))
}
