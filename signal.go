package brandsight

import "context"

// Caps applied to the set-valued Signal fields. Each cap is a hard upper
// bound; discovery order decides which values survive truncation.
const (
	MaxColors      = 30
	MaxFonts       = 10
	MaxHeadings    = 10
	MaxBrandImages = 12

	// MaxBodyExcerpt bounds the body excerpt length in runes.
	MaxBodyExcerpt = 2000

	// Heading texts must be strictly longer than MinHeadingLen and
	// strictly shorter than MaxHeadingLen, measured in runes.
	MinHeadingLen = 2
	MaxHeadingLen = 200
)

// Signal is the brand signal extracted from one page of markup.
//
// A Signal is constructed fresh per analysis call and never mutated after
// assembly. URL-valued fields are either empty (absent), inline data
// references, or same-origin proxied references produced by a Rewriter;
// raw cross-origin URLs never appear here.
type Signal struct {
	Title       string `json:"title"`
	Description string `json:"description"`

	LogoURL    string `json:"logoUrl,omitempty"`
	FaviconURL string `json:"faviconUrl,omitempty"`
	OGImage    string `json:"ogImage,omitempty"`

	// Colors holds normalized lowercase hex values (#rgb or #rrggbb) in
	// first-seen order, deduplicated, at most MaxColors entries.
	Colors []string `json:"colors"`

	// Fonts holds font-family display names in first-seen order with
	// generic CSS keywords excluded, at most MaxFonts entries.
	Fonts []string `json:"fonts"`

	// Headings holds h1-h3 texts in document order, at most MaxHeadings
	// entries.
	Headings []string `json:"headings"`

	// BodyExcerpt is the whitespace-collapsed document text, truncated to
	// MaxBodyExcerpt runes.
	BodyExcerpt string `json:"bodyExcerpt"`

	// BrandImages holds proxied references to brand-representative images,
	// deduplicated, with the chosen logo excluded, at most MaxBrandImages
	// entries.
	BrandImages []string `json:"brandImages"`

	// BaseURL is the absolute URL every relative reference in the document
	// was resolved against. Never empty.
	BaseURL string `json:"baseUrl"`
}

// Validate returns an error if the signal contains invalid fields.
func (s *Signal) Validate() error {
	if s.BaseURL == "" {
		return Errorf(EINVALID, "signal base URL required")
	}
	return nil
}

// Analyzer turns raw markup plus a base URL into a Signal.
//
// Markup is handed in already fetched; implementations never fetch the page
// themselves. Per-field extraction problems are absorbed into empty field
// values; only unusable input (no markup, invalid base URL) is an error.
type Analyzer interface {
	Analyze(ctx context.Context, html string, baseURL string) (*Signal, error)
}
