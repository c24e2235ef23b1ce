package brandsight

// ExtractResult holds the main content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
// The result is used as language-model context when building a brand
// profile; it plays no part in signal extraction itself.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from an Extractor).
	Convert(html string) (string, error)
}

// Sanitizer removes active content from inline SVG markup. Inline SVGs are
// selected as logos without validation, so script elements and event
// handler attributes must be stripped before the markup is trusted.
type Sanitizer interface {
	Sanitize(svg string) (string, error)
}

// LanguageDetector identifies the natural language of a text sample.
type LanguageDetector interface {
	// Detect returns the display name of the detected language (e.g.,
	// "English") and whether detection was confident enough to use.
	Detect(text string) (language string, ok bool)
}
