package brandsight_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/brandsight"
	"github.com/stretchr/testify/assert"
)

func TestProfilePrompt(t *testing.T) {
	t.Parallel()

	t.Run("embeds site data", func(t *testing.T) {
		t.Parallel()

		prompt := brandsight.ProfilePrompt(brandsight.ProfileRequest{
			Signal: &brandsight.Signal{
				BaseURL:  "https://example.com",
				Title:    "Acme Corp",
				Colors:   []string{"#123456", "#abcdef"},
				Fonts:    []string{"Helvetica"},
				Headings: []string{"One", "Two"},
			},
			Content: "# Acme\n\nWe make anvils.",
		})

		assert.Contains(t, prompt, "<url>https://example.com</url>")
		assert.Contains(t, prompt, "#123456, #abcdef")
		assert.Contains(t, prompt, "Helvetica")
		assert.Contains(t, prompt, "One | Two")
		assert.Contains(t, prompt, "We make anvils.")
	})

	t.Run("defaults prose language to English", func(t *testing.T) {
		t.Parallel()

		prompt := brandsight.ProfilePrompt(brandsight.ProfileRequest{
			Signal: &brandsight.Signal{BaseURL: "https://example.com"},
		})
		assert.Contains(t, prompt, "Write all prose fields in English.")
	})

	t.Run("uses the detected language", func(t *testing.T) {
		t.Parallel()

		prompt := brandsight.ProfilePrompt(brandsight.ProfileRequest{
			Signal:   &brandsight.Signal{BaseURL: "https://example.com"},
			Language: "Polish",
		})
		assert.Contains(t, prompt, "Write all prose fields in Polish.")
	})

	t.Run("marks missing data as none found", func(t *testing.T) {
		t.Parallel()

		prompt := brandsight.ProfilePrompt(brandsight.ProfileRequest{
			Signal: &brandsight.Signal{BaseURL: "https://example.com"},
		})
		assert.Contains(t, prompt, "<colors>(none found)</colors>")
	})

	t.Run("bounds embedded content length", func(t *testing.T) {
		t.Parallel()

		prompt := brandsight.ProfilePrompt(brandsight.ProfileRequest{
			Signal:  &brandsight.Signal{BaseURL: "https://example.com"},
			Content: strings.Repeat("x", 20000),
		})
		assert.Less(t, len(prompt), 10000)
	})
}
