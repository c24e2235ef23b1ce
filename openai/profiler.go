// Package openai implements brand profile composition against any
// OpenAI-compatible chat completion endpoint, including OpenRouter.
package openai

import (
	"context"

	"github.com/fwojciec/brandsight"
	"github.com/sashabaranov/go-openai"
)

// DefaultBaseURL targets OpenRouter, the endpoint the hosted product uses.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// Ensure Profiler implements brandsight.Profiler at compile time.
var _ brandsight.Profiler = (*Profiler)(nil)

// Profiler implements brandsight.Profiler over the OpenAI chat API.
type Profiler struct {
	client *openai.Client
	model  string
}

// NewProfiler creates a new Profiler using the given client and model.
func NewProfiler(client *openai.Client, model string) *Profiler {
	return &Profiler{client: client, model: model}
}

// NewClient creates an OpenAI-compatible client. An empty baseURL uses
// the vendor default endpoint.
func NewClient(apiKey, baseURL string) *openai.Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(config)
}

// Profile composes a brand profile from the extracted signal and page
// content.
func (p *Profiler) Profile(ctx context.Context, req brandsight.ProfileRequest) (*brandsight.BrandProfile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Temperature: 0.4,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: brandsight.ProfilePrompt(req),
		}},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, brandsight.Errorf(brandsight.EINTERNAL, "model returned no choices")
	}

	profile, err := brandsight.ParseProfile(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	profile.AttachAssets(req.Signal)
	return profile, nil
}
