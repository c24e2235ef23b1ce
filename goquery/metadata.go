package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// metaContent returns the trimmed content attribute of the first element
// matching the selector, or "" when absent.
func metaContent(doc *goquery.Document, selector string) string {
	v, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(v)
}

// extractTitle returns the trimmed text of the document's title element.
func extractTitle(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// extractDescription returns the description meta tag content, falling
// back to the social-preview description.
func extractDescription(doc *goquery.Document) string {
	if desc := metaContent(doc, `meta[name="description"]`); desc != "" {
		return desc
	}
	return metaContent(doc, `meta[property="og:description"]`)
}

// extractOGImage returns the social-preview image as an absolute URL, or
// "" when absent or unresolvable.
func extractOGImage(doc *goquery.Document, base *url.URL) string {
	return resolveRef(base, metaContent(doc, `meta[property="og:image"]`))
}
