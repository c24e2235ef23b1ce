package brandsight

import (
	"context"
	"encoding/json"
	"strings"
)

// ColorRoles assigns extracted palette colors to brand roles.
type ColorRoles struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// FontRoles assigns extracted fonts to typographic roles.
type FontRoles struct {
	HeadingFont string `json:"headingFont"`
	BodyFont    string `json:"bodyFont"`
	Description string `json:"description"`
}

// BrandProfile is the language-model-composed brand identity built on top
// of a Signal. The model fills the descriptive fields; the real assets
// (logo, favicon, preview image) are merged in afterwards via AttachAssets
// and are never invented.
type BrandProfile struct {
	BusinessName string     `json:"businessName"`
	Tagline      string     `json:"tagline"`
	BrandSummary string     `json:"brandSummary"`
	ToneOfVoice  []string   `json:"toneOfVoice"`
	Colors       ColorRoles `json:"colors"`
	Typography   FontRoles  `json:"typography"`

	// LogoPrompt and ImageStylePrompt are generation prompts for external
	// image models, always written in English.
	LogoPrompt       string `json:"logoPrompt"`
	ImageStylePrompt string `json:"imageStylePrompt"`

	// Asset references attached from the Signal after composition.
	LogoURL       string `json:"logoUrl,omitempty"`
	BrandImageURL string `json:"brandImageUrl,omitempty"`
}

// AttachAssets merges the signal's resolved asset references into the
// profile. The signal's logo wins over anything the model produced; the
// favicon fills in only when no logo was resolved.
func (p *BrandProfile) AttachAssets(sig *Signal) {
	if sig == nil {
		return
	}
	if sig.LogoURL != "" {
		p.LogoURL = sig.LogoURL
	}
	if sig.OGImage != "" {
		p.BrandImageURL = sig.OGImage
	}
	if p.LogoURL == "" && sig.FaviconURL != "" {
		p.LogoURL = sig.FaviconURL
	}
}

// ProfileRequest carries everything a Profiler needs for one composition.
type ProfileRequest struct {
	// Signal is the extracted brand signal. Required.
	Signal *Signal

	// Content is the page's main content as Markdown, used as additional
	// model context. Optional.
	Content string

	// Language is the display name of the site's language. Prose fields of
	// the profile are written in this language; empty defaults to English.
	Language string
}

// Validate returns an error if the request is unusable.
func (r *ProfileRequest) Validate() error {
	if r.Signal == nil {
		return Errorf(EINVALID, "profile request signal required")
	}
	return r.Signal.Validate()
}

// Profiler composes a BrandProfile from a Signal and page content.
type Profiler interface {
	Profile(ctx context.Context, req ProfileRequest) (*BrandProfile, error)
}

// ParseProfile decodes a model response into a BrandProfile. Models are
// instructed to return bare JSON but some wrap it in Markdown fences
// anyway; fences are tolerated.
func ParseProfile(text string) (*BrandProfile, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var profile BrandProfile
	if err := json.Unmarshal([]byte(text), &profile); err != nil {
		return nil, Errorf(EINTERNAL, "invalid profile JSON from model: %v", err)
	}
	return &profile, nil
}
