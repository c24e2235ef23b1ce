package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/brandsight"
	"github.com/fwojciec/brandsight/pdf"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config *Config

	Fetcher   brandsight.Fetcher
	Analyzer  brandsight.Analyzer
	Gateway   brandsight.Gateway
	Extractor brandsight.Extractor
	Converter brandsight.Converter
	Detector  brandsight.LanguageDetector
	Profiler  brandsight.Profiler
	Renderer  *pdf.Renderer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Analyze AnalyzeCmd `cmd:"" help:"Extract the brand signal from a website"`
	Profile ProfileCmd `cmd:"" help:"Compose a brand profile for a website"`
	Sheet   SheetCmd   `cmd:"" help:"Render a PDF brand sheet for a website"`
	Serve   ServeCmd   `cmd:"" help:"Run the brand analysis API server"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URL    string `arg:"" help:"Website URL"`
	Render bool   `short:"r" help:"Render the page with headless Chrome before analysis"`
}

// ProfileCmd is the "profile" subcommand.
type ProfileCmd struct {
	URL    string `arg:"" help:"Website URL"`
	Render bool   `short:"r" help:"Render the page with headless Chrome before analysis"`
}

// SheetCmd is the "sheet" subcommand.
type SheetCmd struct {
	URL    string `arg:"" help:"Website URL"`
	Out    string `short:"o" default:"brand-sheet.pdf" help:"Output PDF path"`
	Render bool   `short:"r" help:"Render the page with headless Chrome before analysis"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr   string `help:"Listen address (overrides config)"`
	Config string `help:"Config file path" type:"path"`
	Render bool   `short:"r" help:"Render pages with headless Chrome"`
}

// analyzeSite fetches a URL and extracts its brand signal, returning the
// signal together with the fetched markup.
func analyzeSite(deps *Dependencies, url string) (*brandsight.Signal, string, error) {
	page, err := deps.Fetcher.Fetch(deps.Ctx, url)
	if err != nil {
		return nil, "", err
	}
	sig, err := deps.Analyzer.Analyze(deps.Ctx, page.HTML, page.FinalURL)
	if err != nil {
		return nil, "", err
	}
	return sig, page.HTML, nil
}

// profileSite runs the full pipeline from URL to brand profile.
func profileSite(deps *Dependencies, url string) (*brandsight.BrandProfile, *brandsight.Signal, error) {
	sig, html, err := analyzeSite(deps, url)
	if err != nil {
		return nil, nil, err
	}

	req := brandsight.ProfileRequest{Signal: sig}
	if deps.Extractor != nil && deps.Converter != nil {
		if result, err := deps.Extractor.Extract(html); err == nil && result.ContentHTML != "" {
			if md, err := deps.Converter.Convert(result.ContentHTML); err == nil {
				req.Content = md
			}
		}
	}
	if deps.Detector != nil {
		if language, ok := deps.Detector.Detect(sig.BodyExcerpt); ok {
			req.Language = language
		}
	}

	profile, err := deps.Profiler.Profile(deps.Ctx, req)
	if err != nil {
		return nil, nil, err
	}
	return profile, sig, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
