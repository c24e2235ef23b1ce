// Package gemini implements brand profile composition using Google Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/brandsight"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Profiler implements brandsight.Profiler at compile time.
var _ brandsight.Profiler = (*Profiler)(nil)

// Profiler implements brandsight.Profiler using Google Gemini.
type Profiler struct {
	client *genai.Client
}

// NewProfiler creates a new Profiler.
func NewProfiler(client *genai.Client) *Profiler {
	return &Profiler{client: client}
}

// Profile composes a brand profile from the extracted signal and page
// content. The model fills the descriptive fields; real asset references
// are attached from the signal afterwards.
func (p *Profiler) Profile(ctx context.Context, req brandsight.ProfileRequest) (*brandsight.BrandProfile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	prompt := brandsight.ProfilePrompt(req)
	config := BuildConfig()

	result, err := p.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, brandsight.Errorf(brandsight.EINTERNAL, "gemini returned nil result")
	}

	return ComposeProfile(result.Text(), req.Signal)
}

// ComposeProfile decodes the model's JSON response and merges the
// signal's real asset references into the resulting profile.
func ComposeProfile(text string, sig *brandsight.Signal) (*brandsight.BrandProfile, error) {
	profile, err := brandsight.ParseProfile(text)
	if err != nil {
		return nil, err
	}
	profile.AttachAssets(sig)
	return profile, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a brand identity expert. You ground every answer in the site data provided and never invent colors, fonts, or company facts that contradict it.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}
