package goquery_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/brandsight"
	"github.com/fwojciec/brandsight/goquery"
	"github.com/fwojciec/brandsight/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reachableOnly succeeds probes for URLs containing any of the given
// substrings and fails everything else.
func reachableOnly(substrings ...string) *mock.Prober {
	return &mock.Prober{
		ProbeFn: func(_ context.Context, url string) error {
			for _, s := range substrings {
				if strings.Contains(url, s) {
					return nil
				}
			}
			return brandsight.Errorf(brandsight.EUNAVAILABLE, "unreachable")
		},
	}
}

func TestLogoResolution(t *testing.T) {
	t.Parallel()

	t.Run("accepts inline SVG without any probe", func(t *testing.T) {
		t.Parallel()

		prober := unreachableProber()
		a := goquery.NewAnalyzer(prober, identityRewriter())

		html := `<html><body><header>
<a class="site-logo"><svg viewBox="0 0 10 10"><circle r="4"/></svg></a>
</header></body></html>`

		sig, err := a.Analyze(context.Background(), html, "https://example.com")
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(sig.LogoURL, "data:image/svg+xml;base64,"))
		assert.Empty(t, prober.ProbedURLs, "inline candidates must not be probed")
	})

	t.Run("selects first reachable candidate and short-circuits", func(t *testing.T) {
		t.Parallel()

		// Chain: clearbit, svg icon link, logo image, apple touch icon,
		// sized icon, favicon service. Only the touch icon is reachable.
		prober := reachableOnly("apple-touch")
		a := goquery.NewAnalyzer(prober, identityRewriter())

		html := `<html><head>
<link rel="icon" href="/icon.svg">
<link rel="apple-touch-icon" href="/apple-touch-icon.png">
<link rel="icon" sizes="96x96" href="/favicon-96.png">
</head><body>
<img src="/assets/logo.png" alt="logo">
</body></html>`

		sig, err := a.Analyze(context.Background(), html, "https://example.com")
		require.NoError(t, err)

		assert.Equal(t, "https://example.com/apple-touch-icon.png", sig.LogoURL)
		require.Len(t, prober.ProbedURLs, 4)
		assert.Contains(t, prober.ProbedURLs[0], "logo.clearbit.com/example.com")
		assert.Equal(t, "https://example.com/icon.svg", prober.ProbedURLs[1])
		assert.Equal(t, "https://example.com/assets/logo.png", prober.ProbedURLs[2])
		assert.Equal(t, "https://example.com/apple-touch-icon.png", prober.ProbedURLs[3])
	})

	t.Run("finds logo image by ancestor class", func(t *testing.T) {
		t.Parallel()

		prober := reachableOnly("/mark.png")
		a := goquery.NewAnalyzer(prober, identityRewriter())

		html := `<html><body>
<div class="navbar-brand"><img src="/mark.png" alt="Acme"></div>
</body></html>`

		sig, err := a.Analyze(context.Background(), html, "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/mark.png", sig.LogoURL)
	})

	t.Run("exhaustion yields empty logo with favicon fallback intact", func(t *testing.T) {
		t.Parallel()

		a := goquery.NewAnalyzer(unreachableProber(), identityRewriter())

		html := `<html><head><link rel="shortcut icon" href="/fav.ico"></head><body></body></html>`

		sig, err := a.Analyze(context.Background(), html, "https://example.com")
		require.NoError(t, err)
		assert.Empty(t, sig.LogoURL)
		assert.Equal(t, "https://example.com/fav.ico", sig.FaviconURL)
	})

	t.Run("favicon defaults to conventional path", func(t *testing.T) {
		t.Parallel()

		sig := analyze(t, `<html><body></body></html>`)
		assert.Equal(t, "https://example.com/favicon.ico", sig.FaviconURL)
	})

	t.Run("sanitizer failure skips the inline candidate", func(t *testing.T) {
		t.Parallel()

		sanitizer := &mock.Sanitizer{SanitizeFn: func(_ string) (string, error) {
			return "", brandsight.Errorf(brandsight.EINVALID, "not an svg")
		}}
		prober := reachableOnly("favicon.ico")
		a := goquery.NewAnalyzer(prober, identityRewriter(), goquery.WithSanitizer(sanitizer))

		html := `<html><body><div class="logo"><svg/></div></body></html>`

		sig, err := a.Analyze(context.Background(), html, "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/favicon.ico", sig.LogoURL)
	})
}
