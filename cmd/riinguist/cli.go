package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/riinguist"
	"github.com/fwojciec/riinguist/fuzzy"
	"github.com/fwojciec/riinguist/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config riinguist.Config

	Result    *scrape.Result
	Matcher   *fuzzy.Matcher
	Explainer riinguist.Explainer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config      string         `short:"c" type:"path" env:"RIINGUIST_CONFIG" help:"Path to a TOML config file"`
	TermsURL    string         `name:"terms-url" env:"RIINGUIST_TERMS_URL" help:"Terminology page URL"`
	PatternsURL string         `name:"yaku-url" env:"RIINGUIST_YAKU_URL" help:"Yaku page URL"`
	Prefix      string         `env:"RIINGUIST_PREFIX" help:"Chat command prefix (default \"!explain\")"`
	Threshold   *float64       `env:"RIINGUIST_THRESHOLD" help:"Minimum similarity for a match (default 0.65)"`
	Timeout     *time.Duration `env:"RIINGUIST_TIMEOUT" help:"Timeout per page fetch (default 10s)"`
	RateLimit   *float64       `name:"rate-limit" env:"RIINGUIST_RATE_LIMIT" help:"Maximum page requests per second, 0 for unlimited (default 2)"`
	Verbose     bool           `short:"v" help:"Log fetches and queries to stderr"`

	Explain ExplainCmd `cmd:"" help:"Explain a single term"`
	Serve   ServeCmd   `cmd:"" help:"Answer chat commands read line by line from stdin"`
	Terms   TermsCmd   `cmd:"" help:"List all glossary terms"`
	Stats   StatsCmd   `cmd:"" help:"Show glossary statistics"`
}

// ExplainCmd is the "explain" subcommand.
type ExplainCmd struct {
	Query  []string `arg:"" optional:"" help:"Term to explain"`
	Scores bool     `short:"s" help:"List every matching term with its similarity score"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct{}

// TermsCmd is the "terms" subcommand.
type TermsCmd struct{}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}
