package goquery

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/brandsight"
)

// Well-known third-party lookup services keyed by the page's domain.
const (
	logoServiceURL    = "https://logo.clearbit.com/%s?size=400"
	faviconServiceURL = "https://www.google.com/s2/favicons?domain=%s&sz=128"
)

// Matchers are compiled once; matching itself is stateless, so concurrent
// analyses can share them.
var (
	svgIconLinkMatcher = cascadia.MustCompile(
		`link[rel="icon"][type="image/svg+xml"], link[rel="icon"][href$=".svg"]`)

	touchIconMatcher = cascadia.MustCompile(
		`link[rel="apple-touch-icon"], link[rel="apple-touch-icon-precomposed"]`)

	// Document order decides among equally-ranked icon links, matching
	// browser behavior for grouped selectors.
	sizedIconMatcher = cascadia.MustCompile(
		`link[rel="icon"][sizes="192x192"], link[rel="icon"][sizes="128x128"], ` +
			`link[rel="icon"][sizes="96x96"], link[rel="icon"], link[rel="shortcut icon"]`)

	inlineSVGMatchers = []cascadia.Selector{
		cascadia.MustCompile(`header svg[class*="logo"]`),
		cascadia.MustCompile(`.logo svg`),
		cascadia.MustCompile(`#logo svg`),
		cascadia.MustCompile(`[class*="logo"] svg`),
		cascadia.MustCompile(`a[class*="logo"] svg`),
		cascadia.MustCompile(`header a:first-child svg`),
	}
)

// logoNameHints mark logo/brand naming conventions in attributes.
var logoNameHints = []string{"logo", "brand"}

// logoCandidates builds the ordered logo candidate chain, highest priority
// first. Tiers that yield nothing are simply absent from the chain.
func logoCandidates(doc *goquery.Document, base *url.URL, sanitizer brandsight.Sanitizer) []brandsight.Candidate {
	var chain []brandsight.Candidate
	add := func(ref string, source brandsight.CandidateSource) {
		if ref != "" {
			chain = append(chain, brandsight.Candidate{URL: ref, Source: source})
		}
	}

	host := base.Hostname()
	if host != "" {
		add(fmt.Sprintf(logoServiceURL, host), brandsight.SourceLogoService)
	}
	if href, ok := doc.FindMatcher(svgIconLinkMatcher).First().Attr("href"); ok {
		add(resolveRef(base, href), brandsight.SourceSVGIconLink)
	}
	add(inlineSVGLogo(doc, sanitizer), brandsight.SourceInlineSVG)
	add(logoImage(doc, base), brandsight.SourceLogoImage)
	if href, ok := doc.FindMatcher(touchIconMatcher).First().Attr("href"); ok {
		add(resolveRef(base, href), brandsight.SourceTouchIcon)
	}
	add(faviconURL(doc, base), brandsight.SourceIconLink)
	if host != "" {
		add(fmt.Sprintf(faviconServiceURL, host), brandsight.SourceFaviconService)
	}
	return chain
}

// faviconURL resolves the page's favicon from sized icon links, falling
// back to the conventional root-relative path. Computed independently of
// logo selection and never validated.
func faviconURL(doc *goquery.Document, base *url.URL) string {
	if href, ok := doc.FindMatcher(sizedIconMatcher).First().Attr("href"); ok {
		if resolved := resolveRef(base, href); resolved != "" {
			return resolved
		}
	}
	return resolveRef(base, "/favicon.ico")
}

// inlineSVGLogo serializes the first SVG found in a logo-labeled header
// region into an inline data reference. The markup is sanitized before it
// is trusted, since inline candidates skip reachability validation.
func inlineSVGLogo(doc *goquery.Document, sanitizer brandsight.Sanitizer) string {
	for _, m := range inlineSVGMatchers {
		sel := doc.FindMatcher(m).First()
		if sel.Length() == 0 {
			continue
		}
		raw, err := goquery.OuterHtml(sel)
		if err != nil {
			continue
		}
		if sanitizer != nil {
			clean, err := sanitizer.Sanitize(raw)
			if err != nil {
				continue
			}
			raw = clean
		}
		return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(raw))
	}
	return ""
}

// logoImage finds the first image element whose source, alt text, or
// ancestor class/id matches logo/brand naming conventions.
func logoImage(doc *goquery.Document, base *url.URL) string {
	var found string
	doc.Find("img").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src, ok := s.Attr("src")
		if !ok || strings.TrimSpace(src) == "" {
			src, _ = s.Attr("data-src")
		}
		src = strings.TrimSpace(src)
		if src == "" || !matchesLogoConventions(s) {
			return true
		}
		if strings.HasPrefix(src, "data:") {
			found = src
			return false
		}
		if resolved := resolveRef(base, src); resolved != "" {
			found = resolved
			return false
		}
		return true
	})
	return found
}

func matchesLogoConventions(s *goquery.Selection) bool {
	for _, attr := range []string{"src", "data-src", "alt", "class", "id"} {
		if hasLogoHint(attrLower(s, attr)) {
			return true
		}
	}
	for p := s.Parent(); p.Length() > 0; p = p.Parent() {
		if hasLogoHint(attrLower(p, "class")) || hasLogoHint(attrLower(p, "id")) {
			return true
		}
	}
	return false
}

func hasLogoHint(v string) bool {
	for _, hint := range logoNameHints {
		if strings.Contains(v, hint) {
			return true
		}
	}
	return false
}

func attrLower(s *goquery.Selection, name string) string {
	v, _ := s.Attr(name)
	return strings.ToLower(v)
}
