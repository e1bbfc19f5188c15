// Package meta looks up page metadata for a submitted video link.
// Used to name uploads when the user does not provide a title.
package meta

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"shorts/internal/httputil"
)

// Title fetches the page behind url and returns its title, preferring the
// og:title meta tag over the document <title>. A page without either yields
// an empty string, not an error.
func Title(client *http.Client, url string) (string, error) {
	resp, err := httputil.Get(client, url)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	return extractTitle(doc), nil
}

func extractTitle(doc *goquery.Document) string {
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		if title := clean(og); title != "" {
			return title
		}
	}
	return clean(doc.Find("title").First().Text())
}

// clean collapses internal whitespace; scraped titles often span lines.
func clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
