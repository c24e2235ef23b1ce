package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/fwojciec/brandsight"
	"golang.org/x/time/rate"
)

// Gateway defaults.
const (
	DefaultRateLimit    = 8.0 // requests per second, per host
	DefaultRateBurst    = 4
	DefaultMaxAssetSize = 20 << 20 // 20 MiB
	fallbackContentType = "image/png"
)

// Ensure Gateway implements brandsight.Gateway at compile time.
var _ brandsight.Gateway = (*Gateway)(nil)

// Gateway performs pass-through fetches of remote assets with a
// browser-like user agent. Requests are rate limited per host so probe
// bursts against a single site stay polite, and fetched assets are held
// in a bounded in-memory cache.
type Gateway struct {
	client       *http.Client
	cache        *assetCache
	maxAssetSize int64
	rps          float64
	burst        int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// GatewayOption configures a Gateway.
type GatewayOption func(*Gateway)

// WithGatewayClient sets the underlying HTTP client.
func WithGatewayClient(c *http.Client) GatewayOption {
	return func(g *Gateway) { g.client = c }
}

// WithRateLimit sets the per-host requests-per-second limit.
func WithRateLimit(rps float64, burst int) GatewayOption {
	return func(g *Gateway) { g.rps, g.burst = rps, burst }
}

// WithAssetCache bounds the asset cache. A maxEntries of 0 disables
// caching entirely.
func WithAssetCache(maxEntries int, ttl time.Duration) GatewayOption {
	return func(g *Gateway) { g.cache = newAssetCache(maxEntries, ttl) }
}

// WithMaxAssetSize caps how many bytes of a remote asset are accepted.
func WithMaxAssetSize(n int64) GatewayOption {
	return func(g *Gateway) { g.maxAssetSize = n }
}

// NewGateway creates a new Gateway.
func NewGateway(opts ...GatewayOption) *Gateway {
	g := &Gateway{
		maxAssetSize: DefaultMaxAssetSize,
		rps:          DefaultRateLimit,
		burst:        DefaultRateBurst,
		limiters:     make(map[string]*rate.Limiter),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.client == nil {
		g.client = &http.Client{}
	}
	if g.cache == nil {
		g.cache = newAssetCache(defaultCacheEntries, defaultCacheTTL)
	}
	return g
}

// Probe checks that the remote asset is reachable without downloading its
// body. Servers that reject HEAD outright (405/501) get a single GET with
// the body discarded; this is method negotiation, not a retry.
func (g *Gateway) Probe(ctx context.Context, rawURL string) error {
	if err := g.wait(ctx, rawURL); err != nil {
		return err
	}

	resp, err := g.do(ctx, http.MethodHead, rawURL)
	if err != nil {
		return err
	}
	resp.Body.Close()

	if resp.StatusCode == http.StatusMethodNotAllowed || resp.StatusCode == http.StatusNotImplemented {
		resp, err = g.do(ctx, http.MethodGet, rawURL)
		if err != nil {
			return err
		}
		io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<10))
		resp.Body.Close()
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return brandsight.Errorf(brandsight.EUNAVAILABLE, "HTTP %d probing %s", resp.StatusCode, rawURL)
	}
	return nil
}

// FetchAsset retrieves the remote resource's bytes and content type.
func (g *Gateway) FetchAsset(ctx context.Context, rawURL string) (*brandsight.Asset, error) {
	if asset, ok := g.cache.get(rawURL); ok {
		return asset, nil
	}

	if err := g.wait(ctx, rawURL); err != nil {
		return nil, err
	}

	resp, err := g.do(ctx, http.MethodGet, rawURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, brandsight.Errorf(brandsight.EUNAVAILABLE, "HTTP %d fetching %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, g.maxAssetSize+1))
	if err != nil {
		return nil, brandsight.Errorf(brandsight.EUNAVAILABLE, "reading %s: %v", rawURL, err)
	}
	if int64(len(body)) > g.maxAssetSize {
		return nil, brandsight.Errorf(brandsight.EUNAVAILABLE, "asset %s exceeds size limit", rawURL)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = fallbackContentType
	}

	asset := &brandsight.Asset{ContentType: contentType, Body: body}
	g.cache.set(rawURL, asset)
	return asset, nil
}

func (g *Gateway) do(ctx context.Context, method, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, brandsight.Errorf(brandsight.EINVALID, "invalid url %q: %v", rawURL, err)
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", acceptImage)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, brandsight.Errorf(brandsight.EUNAVAILABLE, "%s %s: %v", method, rawURL, err)
	}
	return resp, nil
}

// wait blocks until the per-host rate limit allows another request.
func (g *Gateway) wait(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return brandsight.Errorf(brandsight.EINVALID, "invalid url %q: %v", rawURL, err)
	}

	g.mu.Lock()
	limiter, ok := g.limiters[u.Host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(g.rps), g.burst)
		g.limiters[u.Host] = limiter
	}
	g.mu.Unlock()

	return limiter.Wait(ctx)
}
