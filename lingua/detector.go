// Package lingua implements language detection for extracted page text.
package lingua

import (
	"github.com/fwojciec/brandsight"
	"github.com/pemistahl/lingua-go"
)

// Detection below this length is unreliable and is skipped.
const minSampleLen = 40

// Ensure Detector implements brandsight.LanguageDetector at compile time.
var _ brandsight.LanguageDetector = (*Detector)(nil)

// Detector detects the natural language of page text.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector creates a Detector covering all supported languages.
func NewDetector() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			Build(),
	}
}

// Detect returns the English display name of the text's language, e.g.
// "English" or "Polish". Short or ambiguous samples report ok=false.
func (d *Detector) Detect(text string) (string, bool) {
	if len(text) < minSampleLen {
		return "", false
	}
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return lang.String(), true
}
