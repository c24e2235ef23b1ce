package openai_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/brandsight"
	brandsightopenai "github.com/fwojciec/brandsight/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfiler_Profile(t *testing.T) {
	t.Parallel()

	profileJSON := `{
		"businessName": "Acme",
		"tagline": "Build better",
		"brandSummary": "Acme builds developer tools.",
		"toneOfVoice": ["confident", "technical"],
		"colors": {"primary": "#112233", "secondary": "#445566", "accent": "#ff0000", "background": "#ffffff", "text": "#111111"},
		"typography": {"headingFont": "Inter", "bodyFont": "Roboto", "description": "Clean geometric sans pairing."},
		"logoPrompt": "A minimal geometric mark.",
		"imageStylePrompt": "Bright studio photography."
	}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req["model"])

		w.Header().Set("Content-Type", "application/json")
		resp := map[string]any{
			"id":      "cmpl-1",
			"object":  "chat.completion",
			"model":   "test-model",
			"choices": []map[string]any{{"index": 0, "message": map[string]any{"role": "assistant", "content": profileJSON}}},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	client := brandsightopenai.NewClient("test-key", srv.URL)
	p := brandsightopenai.NewProfiler(client, "test-model")

	sig := &brandsight.Signal{
		Title:       "Acme",
		LogoURL:     "/api/proxy-image?url=https%3A%2F%2Facme.test%2Flogo.png",
		OGImage:     "/api/proxy-image?url=https%3A%2F%2Facme.test%2Fog.png",
		BaseURL:     "https://acme.test",
		Colors:      []string{"#112233"},
		Fonts:       []string{"Inter"},
		Headings:    []string{"Build better"},
		BodyExcerpt: "Acme builds developer tools.",
	}
	profile, err := p.Profile(t.Context(), brandsight.ProfileRequest{Signal: sig})
	require.NoError(t, err)

	assert.Equal(t, "Acme", profile.BusinessName)
	assert.Equal(t, []string{"confident", "technical"}, profile.ToneOfVoice)
	assert.Equal(t, "#112233", profile.Colors.Primary)
	assert.Equal(t, sig.LogoURL, profile.LogoURL)
	assert.Equal(t, sig.OGImage, profile.BrandImageURL)
}

func TestProfiler_Profile_RequiresSignal(t *testing.T) {
	t.Parallel()

	client := brandsightopenai.NewClient("test-key", "http://localhost:0")
	p := brandsightopenai.NewProfiler(client, "test-model")

	_, err := p.Profile(t.Context(), brandsight.ProfileRequest{})
	assert.Equal(t, brandsight.EINVALID, brandsight.ErrorCode(err))
}
