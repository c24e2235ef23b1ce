// Package goquery implements brand signal extraction over a goquery
// document model. The parse is best-effort: malformed markup degrades to
// whatever tree can be recovered and absent elements yield empty fields.
package goquery

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/brandsight"
	"golang.org/x/sync/errgroup"
)

// DefaultProbeTimeout bounds each logo reachability probe. Exceeding it
// skips that candidate only; the analysis itself is never aborted.
const DefaultProbeTimeout = 3 * time.Second

// Ensure Analyzer implements brandsight.Analyzer at compile time.
var _ brandsight.Analyzer = (*Analyzer)(nil)

// Analyzer extracts a brand Signal from raw markup. It is stateless across
// calls and safe for concurrent use.
type Analyzer struct {
	prober       brandsight.Prober
	rewriter     brandsight.Rewriter
	sanitizer    brandsight.Sanitizer
	probeTimeout time.Duration
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithProbeTimeout sets the per-candidate probe deadline.
// Defaults to DefaultProbeTimeout.
func WithProbeTimeout(d time.Duration) Option {
	return func(a *Analyzer) { a.probeTimeout = d }
}

// WithSanitizer sets the sanitizer applied to inline SVG logos before they
// are encoded as data references. Without one, inline SVG markup is
// encoded verbatim.
func WithSanitizer(s brandsight.Sanitizer) Option {
	return func(a *Analyzer) { a.sanitizer = s }
}

// NewAnalyzer creates a new Analyzer. The prober validates remote logo
// candidates; the rewriter converts every selected URL into a same-origin
// reference. Both are required.
func NewAnalyzer(prober brandsight.Prober, rewriter brandsight.Rewriter, opts ...Option) *Analyzer {
	a := &Analyzer{
		prober:       prober,
		rewriter:     rewriter,
		probeTimeout: DefaultProbeTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze extracts the brand signal from one page of markup. The base URL
// must be absolute; it anchors every relative reference in the document.
// Per-field extraction problems are absorbed into empty values; the
// signal is always returned with whatever subset could be established.
func (a *Analyzer) Analyze(ctx context.Context, rawHTML string, baseURL string) (*brandsight.Signal, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, brandsight.Errorf(brandsight.EINVALID, "markup required")
	}
	base, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil || !base.IsAbs() || base.Host == "" {
		return nil, brandsight.Errorf(brandsight.EINVALID, "invalid base URL %q", baseURL)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, brandsight.Errorf(brandsight.EINVALID, "failed to parse HTML: %v", err)
	}

	sig := &brandsight.Signal{BaseURL: base.String()}

	var (
		logo    string
		favicon string
		ogImage string
		images  *brandsight.OrderedSet
	)

	// The document tree is read-only after construction, so the extractors
	// run concurrently. Only the logo chain touches the network.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sig.Title = extractTitle(doc)
		sig.Description = extractDescription(doc)
		sig.Headings = extractHeadings(doc)
		sig.BodyExcerpt = extractBodyExcerpt(doc)
		return nil
	})
	g.Go(func() error {
		sig.Colors = extractColors(doc)
		sig.Fonts = extractFonts(doc)
		return nil
	})
	g.Go(func() error {
		ogImage = extractOGImage(doc, base)
		favicon = faviconURL(doc, base)
		images = collectBrandImages(doc, base)
		return nil
	})
	g.Go(func() error {
		logo = a.resolveLogo(gctx, logoCandidates(doc, base, a.sanitizer))
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// The logo slot owns its URL; drop it from the image set before the
	// cap so a lower-ranked image can take its place.
	images.Remove(logo)
	for _, img := range images.Values(brandsight.MaxBrandImages) {
		sig.BrandImages = append(sig.BrandImages, a.rewriter.Rewrite(img))
	}

	sig.LogoURL = a.rewriter.Rewrite(logo)
	sig.FaviconURL = a.rewriter.Rewrite(favicon)
	sig.OGImage = a.rewriter.Rewrite(ogImage)
	return sig, nil
}

// resolveLogo consumes the candidate chain in rank order. Inline data
// references are accepted immediately; remote candidates must pass a
// bounded reachability probe. Probe failures advance the chain, never
// abort it. An empty result means total exhaustion, which callers handle
// by falling back to the favicon.
func (a *Analyzer) resolveLogo(ctx context.Context, chain []brandsight.Candidate) string {
	for _, c := range chain {
		if c.Inline() {
			return c.URL
		}
		probeCtx, cancel := context.WithTimeout(ctx, a.probeTimeout)
		err := a.prober.Probe(probeCtx, c.URL)
		cancel()
		if err == nil {
			return c.URL
		}
	}
	return ""
}
