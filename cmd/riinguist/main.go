package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/riinguist"
	"github.com/fwojciec/riinguist/fuzzy"
	"github.com/fwojciec/riinguist/goquery"
	rhttp "github.com/fwojciec/riinguist/http"
	"github.com/fwojciec/riinguist/scrape"
	rslog "github.com/fwojciec/riinguist/slog"
	"github.com/fwojciec/riinguist/toml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Base configuration, overridden by the config file and flags.
	Config riinguist.Config

	// Fetcher used to download the source pages. Defaults to an HTTP
	// fetcher built from the configuration; set it for end-to-end tests.
	Fetcher riinguist.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Config: riinguist.DefaultConfig(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		return m.Fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
//
// The glossary is loaded before any command runs. If loading fails the
// command is not run and the error is returned.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("riinguist"),
		kong.Description("Explain Riichi Mahjong terms from riichi.wiki"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'riinguist --help' to see available commands")
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

	cfg, err := cli.Resolve(m.Config)
	if err != nil {
		if riinguist.ErrorCode(err) == riinguist.EINTERNAL {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		return fmt.Errorf("invalid configuration: %s", riinguist.ErrorMessage(err))
	}
	deps.Config = cfg

	logger := newLogger(stderr, cli.Verbose)
	deps.Logger = logger

	if m.Fetcher == nil {
		m.Fetcher = rhttp.NewFetcher(
			rhttp.WithTimeout(cfg.Timeout),
			rhttp.WithRateLimit(cfg.RateLimit),
		)
	}
	defer m.Close()

	loader := &scrape.Loader{
		Fetcher:     rslog.NewLoggingFetcher(m.Fetcher, logger),
		Terms:       goquery.NewTermExtractor(),
		Patterns:    goquery.NewPatternExtractor(),
		TermsURL:    cfg.TermsURL,
		PatternsURL: cfg.PatternsURL,
	}
	result, err := loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}
	logger.Info("glossary loaded",
		"terms", result.Terms,
		"yaku", result.Patterns,
		"entries", result.Glossary.Len(),
		"checksum", result.Checksum,
	)
	if keys := result.Glossary.Overwritten(); len(keys) > 0 {
		logger.Warn("duplicate glossary keys, later definition kept", "keys", keys)
	}

	matcher := fuzzy.NewMatcher(fuzzy.WithThreshold(cfg.Threshold))
	deps.Result = result
	deps.Matcher = matcher
	deps.Explainer = rslog.NewLoggingExplainer(
		riinguist.NewGlossaryExplainer(result.Glossary, matcher, cfg.Prefix),
		logger,
	)

	return kongCtx.Run(deps)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Resolve layers the config file and flag overrides on top of base and
// validates the result.
func (c *CLI) Resolve(base riinguist.Config) (riinguist.Config, error) {
	cfg := base
	if c.Config != "" {
		var err error
		cfg, err = toml.LoadConfig(c.Config, cfg)
		if err != nil {
			return base, err
		}
	}

	if c.TermsURL != "" {
		cfg.TermsURL = c.TermsURL
	}
	if c.PatternsURL != "" {
		cfg.PatternsURL = c.PatternsURL
	}
	if c.Prefix != "" {
		cfg.Prefix = c.Prefix
	}
	if c.Threshold != nil {
		cfg.Threshold = *c.Threshold
	}
	if c.Timeout != nil {
		cfg.Timeout = *c.Timeout
	}
	if c.RateLimit != nil {
		cfg.RateLimit = *c.RateLimit
	}

	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}
