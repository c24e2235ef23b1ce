package goquery

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/brandsight"
)

// minImageDimension rejects candidates whose declared width or height
// marks them as iconography rather than brand imagery.
const minImageDimension = 80

// imageNoiseHints blocklist tracking pixels, icons, and UI chrome.
var imageNoiseHints = []string{
	"icon", "favicon", "logo", "pixel", "track", "badge", "button",
	"arrow", "sprite", "spacer", "blank", "transparent", "1x1",
}

// imageExtensions gate the generic-image zone: candidates there must look
// like actual image files or be inline data references.
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".gif", ".svg", ".avif"}

var (
	heroRegionMatcher = cascadia.MustCompile(
		`[class*="hero"] img, [class*="banner"] img, [class*="carousel"] img, ` +
			`[class*="feature"] img, [class*="product"] img, ` +
			`[id*="hero"] img, [id*="banner"] img`)

	backgroundImagePattern = regexp.MustCompile(`url\(['"]?([^'")]+)['"]?\)`)
)

// collectBrandImages harvests image candidates zone by zone into one
// discovery-ordered set: social preview tags, hero/gallery regions, inline
// background images, then all remaining images. The caller removes the
// chosen logo and applies the cap afterwards.
func collectBrandImages(doc *goquery.Document, base *url.URL) *brandsight.OrderedSet {
	set := brandsight.NewOrderedSet(nil)

	for _, selector := range []string{
		`meta[property="og:image"]`,
		`meta[name="twitter:image"], meta[property="twitter:image"]`,
	} {
		if content, ok := doc.Find(selector).First().Attr("content"); ok {
			addImageCandidate(set, base, imageCandidate{src: content})
		}
	}

	doc.FindMatcher(heroRegionMatcher).Each(func(_ int, s *goquery.Selection) {
		addImageCandidate(set, base, candidateFromImg(s))
	})

	doc.Find(`[style*="background"]`).Each(func(_ int, s *goquery.Selection) {
		style, _ := s.Attr("style")
		class, _ := s.Attr("class")
		for _, m := range backgroundImagePattern.FindAllStringSubmatch(style, -1) {
			addImageCandidate(set, base, imageCandidate{src: m[1], class: class})
		}
	})

	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		c := candidateFromImg(s)
		c.requireExtension = true
		addImageCandidate(set, base, c)
	})

	return set
}

type imageCandidate struct {
	src, class, alt  string
	width, height    string
	requireExtension bool
}

func candidateFromImg(s *goquery.Selection) imageCandidate {
	src, ok := s.Attr("src")
	if !ok || strings.TrimSpace(src) == "" {
		src, _ = s.Attr("data-src")
	}
	class, _ := s.Attr("class")
	alt, _ := s.Attr("alt")
	width, _ := s.Attr("width")
	height, _ := s.Attr("height")
	return imageCandidate{src: src, class: class, alt: alt, width: width, height: height}
}

func addImageCandidate(set *brandsight.OrderedSet, base *url.URL, c imageCandidate) {
	src := strings.TrimSpace(c.src)
	if src == "" {
		return
	}
	if belowMinDimension(c.width) || belowMinDimension(c.height) {
		return
	}
	if noisy(src) || noisy(c.class) || noisy(c.alt) {
		return
	}
	inline := strings.HasPrefix(src, "data:")
	if c.requireExtension && !inline && !hasImageExtension(src) {
		return
	}
	if !inline {
		src = resolveRef(base, src)
		if src == "" {
			return
		}
	}
	set.Add(src)
}

// belowMinDimension parses a declared width/height attribute. Values that
// do not parse (percentages, auto) pass the filter.
func belowMinDimension(v string) bool {
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	n, err := strconv.Atoi(v)
	return err == nil && n < minImageDimension
}

func noisy(v string) bool {
	v = strings.ToLower(v)
	for _, hint := range imageNoiseHints {
		if strings.Contains(v, hint) {
			return true
		}
	}
	return false
}

func hasImageExtension(src string) bool {
	path := strings.ToLower(src)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	for _, ext := range imageExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
