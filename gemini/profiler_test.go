package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/brandsight"
	"github.com/fwojciec/brandsight/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()
	require.NotNil(t, config)
	assert.Equal(t, "application/json", config.ResponseMIMEType)
	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.4, float64(*config.Temperature), 0.001)
	require.NotNil(t, config.SystemInstruction)
}

func TestProfiler_Profile_RequiresSignal(t *testing.T) {
	t.Parallel()

	p := gemini.NewProfiler(nil)

	_, err := p.Profile(context.Background(), brandsight.ProfileRequest{})
	assert.Equal(t, brandsight.EINVALID, brandsight.ErrorCode(err))
}

func TestComposeProfile(t *testing.T) {
	t.Parallel()

	t.Run("parses fenced json and attaches assets", func(t *testing.T) {
		t.Parallel()

		text := "```json\n" + `{
			"businessName": "Acme",
			"tagline": "Build better",
			"toneOfVoice": ["confident"],
			"colors": {"primary": "#112233"},
			"typography": {"headingFont": "Inter"}
		}` + "\n```"
		sig := &brandsight.Signal{
			LogoURL: "/api/proxy-image?url=https%3A%2F%2Facme.test%2Flogo.svg",
			OGImage: "/api/proxy-image?url=https%3A%2F%2Facme.test%2Fog.png",
		}

		profile, err := gemini.ComposeProfile(text, sig)
		require.NoError(t, err)

		assert.Equal(t, "Acme", profile.BusinessName)
		assert.Equal(t, "#112233", profile.Colors.Primary)
		assert.Equal(t, sig.LogoURL, profile.LogoURL)
		assert.Equal(t, sig.OGImage, profile.BrandImageURL)
	})

	t.Run("falls back to the favicon when no logo resolved", func(t *testing.T) {
		t.Parallel()

		sig := &brandsight.Signal{
			FaviconURL: "/api/proxy-image?url=https%3A%2F%2Facme.test%2Ffavicon.ico",
		}

		profile, err := gemini.ComposeProfile(`{"businessName": "Acme"}`, sig)
		require.NoError(t, err)

		assert.Equal(t, sig.FaviconURL, profile.LogoURL)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.ComposeProfile("not json at all", &brandsight.Signal{})
		assert.Equal(t, brandsight.EINTERNAL, brandsight.ErrorCode(err))
	})
}
