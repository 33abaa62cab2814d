package material

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ExtractText reduces tutorial HTML to plain text: script and style
// blocks are dropped, tags are stripped, and whitespace is collapsed to
// single spaces. Returns ErrEmptyMaterial when nothing readable remains.
func ExtractText(markup string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript").Remove()

	// Collect text nodes individually so adjacent elements do not run
	// together when the markup has no whitespace between them.
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}

	text := strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
	if text == "" {
		return "", ErrEmptyMaterial
	}
	return text, nil
}
