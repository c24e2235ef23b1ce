package goquery_test

import (
	"context"
	"testing"

	"github.com/fwojciec/brandsight"
	"github.com/fwojciec/brandsight/goquery"
	"github.com/fwojciec/brandsight/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreachableProber fails every probe, forcing total chain exhaustion.
func unreachableProber() *mock.Prober {
	return &mock.Prober{
		ProbeFn: func(_ context.Context, _ string) error {
			return brandsight.Errorf(brandsight.EUNAVAILABLE, "unreachable")
		},
	}
}

// identityRewriter passes URLs through unchanged so tests can assert on
// the pre-rewrite values directly.
func identityRewriter() *mock.Rewriter {
	return &mock.Rewriter{RewriteFn: func(url string) string { return url }}
}

func analyze(t *testing.T, html string) *brandsight.Signal {
	t.Helper()
	a := goquery.NewAnalyzer(unreachableProber(), identityRewriter())
	sig, err := a.Analyze(context.Background(), html, "https://example.com")
	require.NoError(t, err)
	return sig
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty markup", func(t *testing.T) {
		t.Parallel()

		a := goquery.NewAnalyzer(unreachableProber(), identityRewriter())
		_, err := a.Analyze(context.Background(), "  \n ", "https://example.com")
		require.Error(t, err)
		assert.Equal(t, brandsight.EINVALID, brandsight.ErrorCode(err))
	})

	t.Run("rejects relative base URL", func(t *testing.T) {
		t.Parallel()

		a := goquery.NewAnalyzer(unreachableProber(), identityRewriter())
		_, err := a.Analyze(context.Background(), "<html></html>", "/relative")
		require.Error(t, err)
		assert.Equal(t, brandsight.EINVALID, brandsight.ErrorCode(err))
	})

	t.Run("tolerates malformed markup", func(t *testing.T) {
		t.Parallel()

		sig := analyze(t, `<div><p>unclosed<title>Broken Site`)
		assert.Equal(t, "Broken Site", sig.Title)
		assert.Equal(t, "https://example.com", sig.BaseURL)
	})

	t.Run("assembles full signal", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
	<title> Acme Corp </title>
	<meta name="description" content="We make anvils.">
	<meta property="og:image" content="/social.png">
	<style>h1 { color: #c0ffee; font-family: "Acme Grotesk", sans-serif; }</style>
</head>
<body>
	<h1>Heavy industry, light touch</h1>
	<p>Anvils  and   more.</p>
</body>
</html>`

		sig := analyze(t, html)
		assert.Equal(t, "Acme Corp", sig.Title)
		assert.Equal(t, "We make anvils.", sig.Description)
		assert.Equal(t, "https://example.com/social.png", sig.OGImage)
		assert.Equal(t, []string{"#c0ffee"}, sig.Colors)
		assert.Equal(t, []string{"Acme Grotesk"}, sig.Fonts)
		assert.Equal(t, []string{"Heavy industry, light touch"}, sig.Headings)
		assert.Contains(t, sig.BodyExcerpt, "Anvils and more.")
		assert.Empty(t, sig.LogoURL)
		assert.Equal(t, "https://example.com/favicon.ico", sig.FaviconURL)
	})

	t.Run("rewrites every URL-valued field", func(t *testing.T) {
		t.Parallel()

		rewriter := &mock.Rewriter{RewriteFn: func(url string) string {
			if url == "" {
				return ""
			}
			return "/api/proxy-image?url=" + url
		}}
		a := goquery.NewAnalyzer(unreachableProber(), rewriter)

		html := `<html><head><meta property="og:image" content="/social.png"></head>
<body><div class="hero"><img src="/big.jpg" width="900"></div></body></html>`

		sig, err := a.Analyze(context.Background(), html, "https://example.com")
		require.NoError(t, err)

		assert.Equal(t, "/api/proxy-image?url=https://example.com/social.png", sig.OGImage)
		for _, img := range sig.BrandImages {
			assert.Contains(t, img, "/api/proxy-image?url=")
		}
		assert.Contains(t, sig.FaviconURL, "/api/proxy-image?url=")
	})

	t.Run("is deterministic for identical input", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Same</title>
<style>a { color: #123456; } b { color: #abcdef; }</style></head>
<body><h1>One heading</h1><div class="hero"><img src="/a.jpg"><img src="/b.jpg"></div></body></html>`

		a := goquery.NewAnalyzer(unreachableProber(), identityRewriter())
		first, err := a.Analyze(context.Background(), html, "https://example.com")
		require.NoError(t, err)
		second, err := a.Analyze(context.Background(), html, "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
