// Package toml loads riinguist configuration from TOML files.
package toml

import (
	"bytes"
	"errors"
	"os"
	"time"

	"github.com/fwojciec/riinguist"
	toml "github.com/pelletier/go-toml/v2"
)

// file mirrors the on-disk layout. Pointer fields distinguish keys that are
// absent from keys explicitly set to their zero value.
type file struct {
	Sources struct {
		TermsURL    *string `toml:"terms_url"`
		PatternsURL *string `toml:"patterns_url"`
	} `toml:"sources"`

	Bot struct {
		Prefix    *string  `toml:"prefix"`
		Threshold *float64 `toml:"threshold"`
	} `toml:"bot"`

	HTTP struct {
		Timeout   *string  `toml:"timeout"` // duration string, e.g. "10s"
		RateLimit *float64 `toml:"rate_limit"`
	} `toml:"http"`
}

// LoadConfig reads the TOML file at path and applies its values on top of
// base. Keys missing from the file keep their value from base.
// Returns ENOTFOUND if the file does not exist.
func LoadConfig(path string, base riinguist.Config) (riinguist.Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return base, riinguist.Errorf(riinguist.ENOTFOUND, "config file %q not found", path)
	} else if err != nil {
		return base, err
	}
	return ParseConfig(data, base)
}

// ParseConfig decodes TOML data and applies its values on top of base.
// Unknown keys are rejected so that typos do not go unnoticed.
func ParseConfig(data []byte, base riinguist.Config) (riinguist.Config, error) {
	var f file
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return base, riinguist.Errorf(riinguist.EINVALID, "invalid config: %v", err)
	}

	cfg := base
	if v := f.Sources.TermsURL; v != nil {
		cfg.TermsURL = *v
	}
	if v := f.Sources.PatternsURL; v != nil {
		cfg.PatternsURL = *v
	}
	if v := f.Bot.Prefix; v != nil {
		cfg.Prefix = *v
	}
	if v := f.Bot.Threshold; v != nil {
		cfg.Threshold = *v
	}
	if v := f.HTTP.Timeout; v != nil {
		d, err := time.ParseDuration(*v)
		if err != nil {
			return base, riinguist.Errorf(riinguist.EINVALID, "invalid http.timeout %q: %v", *v, err)
		}
		cfg.Timeout = d
	}
	if v := f.HTTP.RateLimit; v != nil {
		cfg.RateLimit = *v
	}

	return cfg, nil
}
