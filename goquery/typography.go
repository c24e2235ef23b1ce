package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/brandsight"
)

var (
	fontFamilyPattern     = regexp.MustCompile(`(?i)font-family\s*:\s*([^;}]+)`)
	fontLinkFamilyPattern = regexp.MustCompile(`family=([^&]+)`)
)

// genericFontKeywords are CSS keywords that name no real typeface.
var genericFontKeywords = map[string]struct{}{
	"sans-serif": {},
	"serif":      {},
	"monospace":  {},
	"inherit":    {},
	"initial":    {},
}

// extractFonts harvests font-family names from inline style blocks and from
// Google Fonts link references. Names are deduplicated case-insensitively
// in discovery order and capped at brandsight.MaxFonts.
func extractFonts(doc *goquery.Document) []string {
	set := brandsight.NewOrderedSet(strings.ToLower)

	doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		for _, m := range fontFamilyPattern.FindAllStringSubmatch(s.Text(), -1) {
			for _, family := range strings.Split(m[1], ",") {
				family = strings.Trim(strings.TrimSpace(family), `'"`)
				if family == "" {
					continue
				}
				if _, generic := genericFontKeywords[strings.ToLower(family)]; generic {
					continue
				}
				set.Add(family)
			}
		}
	})

	doc.Find(`link[href*="fonts.googleapis.com"]`).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		m := fontLinkFamilyPattern.FindStringSubmatch(href)
		if m == nil {
			return
		}
		// family=Roboto:wght@400|Open+Sans: multiple families split on
		// "|", variant suffixes dropped after ":", "+" decodes to space.
		for _, family := range strings.Split(m[1], "|") {
			family, _, _ = strings.Cut(family, ":")
			family = strings.ReplaceAll(family, "+", " ")
			if decoded, err := url.QueryUnescape(family); err == nil {
				family = decoded
			}
			family = strings.TrimSpace(family)
			if family != "" {
				set.Add(family)
			}
		}
	})

	return set.Values(brandsight.MaxFonts)
}
