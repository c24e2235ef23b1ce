package goquery_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/brandsight"
	"github.com/fwojciec/brandsight/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectBrandImages(t *testing.T) {
	t.Parallel()

	t.Run("harvests zones in order with deduplication", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta property="og:image" content="/social.png">
<meta name="twitter:image" content="/twitter.png">
</head><body>
<div class="hero"><img src="/hero.jpg"></div>
<div style="background-image: url('/bg.webp')"></div>
<img src="/social.png">
<img src="/gallery.jpg">
</body></html>`

		sig := analyze(t, html)
		assert.Equal(t, []string{
			"https://example.com/social.png",
			"https://example.com/twitter.png",
			"https://example.com/hero.jpg",
			"https://example.com/bg.webp",
			"https://example.com/gallery.jpg",
		}, sig.BrandImages)
	})

	t.Run("rejects undersized and noise candidates", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="hero">
<img src="/tiny.jpg" width="40" height="40">
<img src="/chrome.png" class="icon">
<img src="/tracker.gif" alt="tracking pixel">
<img src="/keep.jpg" width="1200" height="600">
</div></body></html>`

		sig := analyze(t, html)
		assert.Equal(t, []string{"https://example.com/keep.jpg"}, sig.BrandImages)
	})

	t.Run("generic zone requires an image extension", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<img src="/dynamic/render">
<img src="/photo.jpg?w=1200">
<div class="hero"><img src="/hero/no-extension"></div>
</body></html>`

		sig := analyze(t, html)
		assert.Equal(t, []string{
			"https://example.com/hero/no-extension",
			"https://example.com/photo.jpg?w=1200",
		}, sig.BrandImages)
	})

	t.Run("excludes the selected logo", func(t *testing.T) {
		t.Parallel()

		// The brand mark appears both as the logo and inside the hero; the
		// logo slot wins and the image set drops it.
		prober := reachableOnly("/mark.png")
		a := goquery.NewAnalyzer(prober, identityRewriter())

		html := `<html><body>
<div class="navbar-brand"><img src="/mark.png"></div>
<div class="hero"><img src="/mark.png"><img src="/hero.jpg"></div>
</body></html>`

		sig, err := a.Analyze(context.Background(), html, "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/mark.png", sig.LogoURL)
		assert.Equal(t, []string{"https://example.com/hero.jpg"}, sig.BrandImages)
	})

	t.Run("caps at twelve entries", func(t *testing.T) {
		t.Parallel()

		var sb strings.Builder
		sb.WriteString(`<html><body><div class="hero">`)
		for i := 0; i < 20; i++ {
			fmt.Fprintf(&sb, `<img src="/img-%02d.jpg">`, i)
		}
		sb.WriteString(`</div></body></html>`)

		sig := analyze(t, sb.String())
		require.Len(t, sig.BrandImages, brandsight.MaxBrandImages)
		assert.Equal(t, "https://example.com/img-00.jpg", sig.BrandImages[0])
	})

	t.Run("passes inline data references through", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="hero">
<img src="data:image/png;base64,aGVsbG8=">
</div></body></html>`

		sig := analyze(t, html)
		assert.Equal(t, []string{"data:image/png;base64,aGVsbG8="}, sig.BrandImages)
	})
}
