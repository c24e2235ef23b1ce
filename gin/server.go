// Package gin implements the HTTP API server. It exposes the page
// gateway endpoints used by browser clients (site fetching and image
// proxying) together with the analysis and profiling operations.
package gin

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/brandsight"
	"github.com/gin-gonic/gin"
)

// DefaultAddr is the default listen address.
const DefaultAddr = ":3001"

// Server serves the brand analysis API.
type Server struct {
	router *gin.Engine
	server *http.Server

	// Addr is the listen address. Defaults to DefaultAddr.
	Addr string

	// Fetcher retrieves page markup for URL-based operations. Required.
	Fetcher brandsight.Fetcher

	// Analyzer extracts brand signals from markup. Required.
	Analyzer brandsight.Analyzer

	// Gateway backs the image proxy endpoint. Required.
	Gateway brandsight.Gateway

	// Extractor, Converter and Detector prepare language-model context
	// for profiling. Optional; profiling works without them but with
	// less context.
	Extractor brandsight.Extractor
	Converter brandsight.Converter
	Detector  brandsight.LanguageDetector

	// Profiler composes brand profiles. Optional; the profile endpoint
	// reports unavailable when unset.
	Profiler brandsight.Profiler

	Logger *slog.Logger
}

// NewServer creates a Server with routes and middleware registered.
func NewServer(logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		router: gin.New(),
		Addr:   DefaultAddr,
		Logger: logger,
	}

	s.router.Use(gin.Recovery())
	s.router.Use(requestID())
	s.router.Use(requestLogger(logger))

	s.router.GET("/healthz", s.handleHealth)
	s.router.GET("/api/fetch-site", s.handleFetchSite)
	s.router.GET("/api/proxy-image", s.handleProxyImage)
	s.router.HEAD("/api/proxy-image", s.handleProxyImage)
	s.router.POST("/api/analyze", s.handleAnalyze)
	s.router.POST("/api/profile", s.handleProfile)

	return s
}

// Handler returns the server's HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Open starts listening on Addr. It blocks until the server stops.
func (s *Server) Open() error {
	s.server = &http.Server{
		Addr:              s.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.Logger.Info("server listening", "addr", s.Addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close shuts the server down gracefully.
func (s *Server) Close(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleFetchSite resolves a URL to its rendered markup and final URL so
// that browser clients can analyze sites without tripping CORS.
func (s *Server) handleFetchSite(c *gin.Context) {
	target := c.Query("url")
	if target == "" {
		respondError(c, brandsight.Errorf(brandsight.EINVALID, "url query parameter required"))
		return
	}

	page, err := s.Fetcher.Fetch(c.Request.Context(), target)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"html":     page.HTML,
		"finalUrl": page.FinalURL,
	})
}

// handleProxyImage streams a remote image through the server so that
// proxied references produced by analysis resolve same-origin.
func (s *Server) handleProxyImage(c *gin.Context) {
	target := c.Query("url")
	if target == "" {
		respondError(c, brandsight.Errorf(brandsight.EINVALID, "url query parameter required"))
		return
	}

	asset, err := s.Gateway.FetchAsset(c.Request.Context(), target)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	if c.Request.Method == http.MethodHead {
		c.Header("Content-Type", asset.ContentType)
		c.Status(http.StatusOK)
		return
	}
	c.Data(http.StatusOK, asset.ContentType, asset.Body)
}

type analyzeRequest struct {
	// URL is fetched before analysis. Mutually exclusive with HTML.
	URL string `json:"url"`

	// HTML and BaseURL analyze already-fetched markup directly.
	HTML    string `json:"html"`
	BaseURL string `json:"baseUrl"`
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, brandsight.Errorf(brandsight.EINVALID, "invalid request body: %v", err))
		return
	}

	sig, _, err := s.analyze(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sig)
}

func (s *Server) handleProfile(c *gin.Context) {
	if s.Profiler == nil {
		respondError(c, brandsight.Errorf(brandsight.EUNAVAILABLE, "profiling is not configured"))
		return
	}

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, brandsight.Errorf(brandsight.EINVALID, "invalid request body: %v", err))
		return
	}

	ctx := c.Request.Context()
	sig, html, err := s.analyze(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}

	profile, err := s.Profiler.Profile(ctx, brandsight.ProfileRequest{
		Signal:   sig,
		Content:  s.pageContent(html),
		Language: s.pageLanguage(sig),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// analyze runs signal extraction for either request form and returns the
// signal together with the markup it was extracted from.
func (s *Server) analyze(ctx context.Context, req analyzeRequest) (*brandsight.Signal, string, error) {
	html, baseURL := req.HTML, req.BaseURL
	if req.URL != "" {
		page, err := s.Fetcher.Fetch(ctx, req.URL)
		if err != nil {
			return nil, "", err
		}
		html, baseURL = page.HTML, page.FinalURL
	}

	sig, err := s.Analyzer.Analyze(ctx, html, baseURL)
	if err != nil {
		return nil, "", err
	}
	return sig, html, nil
}

// pageContent converts the page's main content to Markdown for use as
// model context. Content is best-effort; failures degrade to no context.
func (s *Server) pageContent(html string) string {
	if s.Extractor == nil || s.Converter == nil {
		return ""
	}
	result, err := s.Extractor.Extract(html)
	if err != nil || result.ContentHTML == "" {
		return ""
	}
	md, err := s.Converter.Convert(result.ContentHTML)
	if err != nil {
		return ""
	}
	return md
}

func (s *Server) pageLanguage(sig *brandsight.Signal) string {
	if s.Detector == nil {
		return ""
	}
	language, ok := s.Detector.Detect(sig.BodyExcerpt)
	if !ok {
		return ""
	}
	return language
}

// respondError maps domain error codes to HTTP statuses.
func respondError(c *gin.Context, err error) {
	code := brandsight.ErrorCode(err)
	status := http.StatusInternalServerError
	switch code {
	case brandsight.EINVALID:
		status = http.StatusBadRequest
	case brandsight.ENOTFOUND:
		status = http.StatusNotFound
	case brandsight.EUNAUTHORIZED:
		status = http.StatusUnauthorized
	case brandsight.EUNAVAILABLE:
		status = http.StatusServiceUnavailable
	case brandsight.ECONFLICT:
		status = http.StatusConflict
	}

	c.AbortWithStatusJSON(status, gin.H{
		"error": brandsight.ErrorMessage(err),
		"code":  code,
	})
}
