package pdf_test

import (
	"bytes"
	"testing"

	"github.com/fwojciec/brandsight"
	"github.com/fwojciec/brandsight/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("renders a pdf document", func(t *testing.T) {
		t.Parallel()

		profile := &brandsight.BrandProfile{
			BusinessName: "Acme Studio",
			Tagline:      "We build memorable brands",
			BrandSummary: "Acme Studio is a design agency focused on brand identity.",
			ToneOfVoice:  []string{"confident", "warm"},
			Colors: brandsight.ColorRoles{
				Primary:    "#112233",
				Secondary:  "#445566",
				Accent:     "#f00",
				Background: "#ffffff",
				Text:       "#111111",
			},
			Typography: brandsight.FontRoles{
				HeadingFont: "Inter",
				BodyFont:    "Roboto",
			},
			LogoPrompt: "A minimal geometric mark in deep blue.",
		}
		sig := &brandsight.Signal{
			Colors:   []string{"#112233", "#445566"},
			Headings: []string{"We build memorable brands"},
		}

		var buf bytes.Buffer
		err := pdf.NewRenderer().Render(profile, sig, &buf)

		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
		assert.Greater(t, buf.Len(), 500)
	})

	t.Run("renders without a signal", func(t *testing.T) {
		t.Parallel()

		profile := &brandsight.BrandProfile{BusinessName: "Acme"}

		var buf bytes.Buffer
		err := pdf.NewRenderer().Render(profile, nil, &buf)

		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	})

	t.Run("requires a profile", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := pdf.NewRenderer().Render(nil, nil, &buf)

		require.Error(t, err)
		assert.Equal(t, brandsight.EINVALID, brandsight.ErrorCode(err))
	})
}
