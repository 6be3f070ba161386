package providers

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// stripHTML reduces an HTML fragment to plain text. Job descriptions
// from some providers arrive as full HTML; downstream formatting and
// filtering only want the visible text.
func stripHTML(raw string) string {
	if raw == "" || !strings.Contains(raw, "<") {
		return strings.TrimSpace(raw)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return strings.TrimSpace(raw)
	}

	doc.Find("script, style").Remove()

	// Collapse runs of whitespace left behind by removed tags
	return strings.Join(strings.Fields(doc.Text()), " ")
}
