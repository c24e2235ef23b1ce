package mock

import "github.com/fwojciec/brandsight"

var _ brandsight.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of brandsight.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*brandsight.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*brandsight.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ brandsight.Converter = (*Converter)(nil)

// Converter is a mock implementation of brandsight.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ brandsight.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of brandsight.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(svg string) (string, error)
}

func (s *Sanitizer) Sanitize(svg string) (string, error) {
	return s.SanitizeFn(svg)
}

var _ brandsight.LanguageDetector = (*LanguageDetector)(nil)

// LanguageDetector is a mock implementation of brandsight.LanguageDetector.
type LanguageDetector struct {
	DetectFn func(text string) (string, bool)
}

func (d *LanguageDetector) Detect(text string) (string, bool) {
	return d.DetectFn(text)
}
