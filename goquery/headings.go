package goquery

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/brandsight"
)

var whitespaceRunPattern = regexp.MustCompile(`\s+`)

// extractHeadings collects h1-h3 texts in document order, keeping entries
// whose trimmed rune length is strictly between the heading bounds, capped
// at brandsight.MaxHeadings.
func extractHeadings(doc *goquery.Document) []string {
	var headings []string
	doc.Find("h1, h2, h3").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		n := utf8.RuneCountInString(text)
		if n > brandsight.MinHeadingLen && n < brandsight.MaxHeadingLen {
			headings = append(headings, text)
		}
		return len(headings) < brandsight.MaxHeadings
	})
	return headings
}

// extractBodyExcerpt returns the body text with whitespace runs collapsed
// to single spaces, trimmed, and truncated to brandsight.MaxBodyExcerpt
// runes.
func extractBodyExcerpt(doc *goquery.Document) string {
	body := doc.Find("body").First()
	text := body.Text()
	if body.Length() == 0 {
		text = doc.Text()
	}
	text = strings.TrimSpace(whitespaceRunPattern.ReplaceAllString(text, " "))
	runes := []rune(text)
	if len(runes) > brandsight.MaxBodyExcerpt {
		return string(runes[:brandsight.MaxBodyExcerpt])
	}
	return text
}
