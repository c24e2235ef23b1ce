package goquery

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/brandsight"
)

var (
	// hexColorPattern matches hex colors of any length; scanColors keeps
	// only the 4- and 7-character forms (#rgb, #rrggbb). Alpha-suffixed
	// 4/8-digit hex values are intentionally excluded.
	hexColorPattern = regexp.MustCompile(`#[0-9a-fA-F]{3,8}\b`)

	// rgbColorPattern captures the R/G/B components of rgb() and rgba()
	// expressions. The alpha channel, if present, is ignored.
	rgbColorPattern = regexp.MustCompile(`rgba?\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)`)
)

// extractColors harvests color values from every inline style block and
// from every element's style attribute, in that order. Values are
// normalized to lowercase hex, deduplicated in discovery order, and capped
// at brandsight.MaxColors.
func extractColors(doc *goquery.Document) []string {
	set := brandsight.NewOrderedSet(nil)

	doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		scanColors(set, s.Text())
	})
	doc.Find("[style]").Each(func(_ int, s *goquery.Selection) {
		style, _ := s.Attr("style")
		scanColors(set, style)
	})

	return set.Values(brandsight.MaxColors)
}

func scanColors(set *brandsight.OrderedSet, text string) {
	for _, m := range hexColorPattern.FindAllString(text, -1) {
		if len(m) == 4 || len(m) == 7 {
			set.Add(strings.ToLower(m))
		}
	}
	for _, m := range rgbColorPattern.FindAllStringSubmatch(text, -1) {
		r, errR := strconv.Atoi(m[1])
		g, errG := strconv.Atoi(m[2])
		b, errB := strconv.Atoi(m[3])
		if errR != nil || errG != nil || errB != nil {
			continue
		}
		// Components above 255 cannot render as two hex digits.
		if r > 255 || g > 255 || b > 255 {
			continue
		}
		set.Add(fmt.Sprintf("#%02x%02x%02x", r, g, b))
	}
}
