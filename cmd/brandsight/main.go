package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/brandsight"
	"github.com/fwojciec/brandsight/etree"
	"github.com/fwojciec/brandsight/gemini"
	"github.com/fwojciec/brandsight/goquery"
	"github.com/fwojciec/brandsight/htmltomarkdown"
	brandsighthttp "github.com/fwojciec/brandsight/http"
	"github.com/fwojciec/brandsight/lingua"
	"github.com/fwojciec/brandsight/openai"
	"github.com/fwojciec/brandsight/pdf"
	"github.com/fwojciec/brandsight/readability"
	"github.com/fwojciec/brandsight/rod"
	brandsightslog "github.com/fwojciec/brandsight/slog"
	"github.com/fwojciec/brandsight/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// ConfigPath is the config file location. Set before calling Run().
	ConfigPath string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: DefaultConfigPath(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("brandsight"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'brandsight --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	configPath := m.ConfigPath
	if cli.Serve.Config != "" {
		configPath = cli.Serve.Config
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config at %q: %w", configPath, err)
	}
	deps.Config = cfg

	// Wire the extraction pipeline shared by all commands.
	var gatewayOpts []brandsighthttp.GatewayOption
	if cfg.RateLimit > 0 {
		gatewayOpts = append(gatewayOpts, brandsighthttp.WithRateLimit(cfg.RateLimit, 4))
	}
	gateway := brandsighthttp.NewGateway(gatewayOpts...)
	deps.Gateway = brandsightslog.NewLoggingGateway(gateway, deps.Logger)

	rewriter := brandsighthttp.NewRewriter(brandsighthttp.DefaultProxyPath)
	analyzer := goquery.NewAnalyzer(deps.Gateway, rewriter,
		goquery.WithSanitizer(etree.NewSanitizer()))
	deps.Analyzer = brandsightslog.NewLoggingAnalyzer(analyzer, deps.Logger)

	fetcher, err := newFetcher(renderRequested(cmd, cli))
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
		return fmt.Errorf("failed to start fetcher: %w", err)
	}
	defer fetcher.Close()
	deps.Fetcher = brandsightslog.NewLoggingFetcher(fetcher, deps.Logger)

	// Profiling dependencies are only needed by commands that call the
	// language model.
	if cmd == "profile" || cmd == "sheet" || cmd == "serve" {
		deps.Extractor = newExtractor(cfg)
		deps.Converter = htmltomarkdown.NewConverter()
		deps.Detector = lingua.NewDetector()
		deps.Renderer = pdf.NewRenderer()

		profiler, err := newProfiler(ctx, cfg)
		if err != nil {
			if cmd != "serve" {
				return err
			}
			// The server runs without profiling and reports it
			// unavailable per request.
			deps.Logger.Warn("profiling disabled", "err", err)
		}
		deps.Profiler = profiler
	}

	return kongCtx.Run(deps)
}

// defaultOpenAIModel is used when the openai provider has no configured
// model.
const defaultOpenAIModel = "gpt-4o-mini"

func renderRequested(cmd string, cli *CLI) bool {
	switch cmd {
	case "analyze":
		return cli.Analyze.Render
	case "profile":
		return cli.Profile.Render
	case "sheet":
		return cli.Sheet.Render
	case "serve":
		return cli.Serve.Render
	}
	return false
}

func newExtractor(cfg *Config) brandsight.Extractor {
	if cfg.Extractor == "readability" {
		return readability.NewExtractor()
	}
	return trafilatura.NewExtractor()
}

func newFetcher(render bool) (brandsight.Fetcher, error) {
	if render {
		return rod.NewFetcher()
	}
	return brandsighthttp.NewFetcher(), nil
}

func newProfiler(ctx context.Context, cfg *Config) (brandsight.Profiler, error) {
	switch cfg.Provider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewProfiler(client), nil
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY not set")
		}
		model := cfg.Model
		if model == "" {
			model = defaultOpenAIModel
		}
		return openai.NewProfiler(openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL), model), nil
	default:
		return nil, fmt.Errorf("unknown provider %q (expected gemini or openai)", cfg.Provider)
	}
}
