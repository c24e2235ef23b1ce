package brandsight

import "strings"

// CandidateSource identifies where a logo candidate came from. Sources are
// listed in descending priority; the chain is consumed in this order.
type CandidateSource string

// Logo candidate sources, highest priority first.
const (
	SourceLogoService    CandidateSource = "logo-service"    // third-party logo lookup by domain
	SourceSVGIconLink    CandidateSource = "svg-icon-link"   // <link rel="icon"> pointing at an SVG
	SourceInlineSVG      CandidateSource = "inline-svg"      // SVG found in a logo-labeled header region
	SourceLogoImage      CandidateSource = "logo-image"      // <img> matching logo/brand conventions
	SourceTouchIcon      CandidateSource = "touch-icon"      // apple-touch-icon link
	SourceIconLink       CandidateSource = "icon-link"       // sized icon link or /favicon.ico
	SourceFaviconService CandidateSource = "favicon-service" // third-party favicon lookup by domain
)

// Candidate is a tentative, unvalidated reference considered during logo
// selection. Candidates are ephemeral: chains are consumed in order and
// discarded after selection.
type Candidate struct {
	// URL is an absolute remote URL or an inline data reference.
	URL string

	// Source tags which chain tier produced the candidate.
	Source CandidateSource
}

// Inline reports whether the candidate is a self-contained data reference.
// Inline candidates are trusted by construction and selected without a
// reachability probe.
func (c Candidate) Inline() bool {
	return strings.HasPrefix(c.URL, "data:")
}
