package riinguist

import (
	"math"
	"time"
)

// Source pages scraped at startup.
const (
	DefaultTermsURL    = "https://riichi.wiki/List_of_terminology_by_alphabetical_order"
	DefaultPatternsURL = "https://riichi.wiki/List_of_yaku"
)

// DefaultThreshold is the minimum similarity a key needs to match a query.
const DefaultThreshold = 0.65

// Config holds runtime settings for building and serving the glossary.
type Config struct {
	TermsURL    string
	PatternsURL string

	// Prefix is the chat command stripped from incoming queries.
	Prefix string

	// Threshold is the minimum similarity for a key to match a query.
	Threshold float64

	// Timeout bounds each page fetch.
	Timeout time.Duration

	// RateLimit caps outgoing requests per second. Zero disables limiting.
	RateLimit float64
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		TermsURL:    DefaultTermsURL,
		PatternsURL: DefaultPatternsURL,
		Prefix:      DefaultPrefix,
		Threshold:   DefaultThreshold,
		Timeout:     10 * time.Second,
		RateLimit:   2,
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.TermsURL == "" {
		return Errorf(EINVALID, "terms URL required")
	}
	if c.PatternsURL == "" {
		return Errorf(EINVALID, "patterns URL required")
	}
	if c.Prefix == "" {
		return Errorf(EINVALID, "command prefix required")
	}
	if math.IsNaN(c.Threshold) || c.Threshold < 0 || c.Threshold > 1 {
		return Errorf(EINVALID, "threshold must be between 0 and 1, got %v", c.Threshold)
	}
	if c.Timeout <= 0 {
		return Errorf(EINVALID, "timeout must be positive")
	}
	if c.RateLimit < 0 {
		return Errorf(EINVALID, "rate limit must not be negative")
	}
	return nil
}
