// Package scrape builds the glossary from the two riichi.wiki source pages.
package scrape

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/riinguist"
	"golang.org/x/sync/errgroup"
)

// Loader fetches the terminology and yaku pages, extracts definitions from
// both and merges them into a Glossary. Terminology definitions are merged
// first, so a yaku with the same key replaces the terminology entry.
type Loader struct {
	Fetcher  riinguist.Fetcher
	Terms    riinguist.DefinitionExtractor
	Patterns riinguist.DefinitionExtractor

	TermsURL    string
	PatternsURL string
}

// Result describes a successfully built glossary.
type Result struct {
	Glossary *riinguist.Glossary

	// Number of definitions extracted from each page.
	Terms    int
	Patterns int

	// Checksum fingerprints the rendered glossary content.
	Checksum string
}

// Load fetches both pages concurrently and builds the glossary.
// Any fetch, extraction or validation failure aborts the load; a partial
// glossary is never returned.
func (l *Loader) Load(ctx context.Context) (*Result, error) {
	var termsHTML, patternsHTML string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		html, err := l.Fetcher.Fetch(gctx, l.TermsURL)
		if err != nil {
			return fmt.Errorf("fetch %s: %w", l.TermsURL, err)
		}
		termsHTML = html
		return nil
	})
	g.Go(func() error {
		html, err := l.Fetcher.Fetch(gctx, l.PatternsURL)
		if err != nil {
			return fmt.Errorf("fetch %s: %w", l.PatternsURL, err)
		}
		patternsHTML = html
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load glossary: %w", err)
	}

	terms, err := l.Terms.Extract(termsHTML)
	if err != nil {
		return nil, fmt.Errorf("load glossary: extract terms from %s: %w", l.TermsURL, err)
	}
	patterns, err := l.Patterns.Extract(patternsHTML)
	if err != nil {
		return nil, fmt.Errorf("load glossary: extract yaku from %s: %w", l.PatternsURL, err)
	}

	defs := make([]riinguist.Definition, 0, len(terms)+len(patterns))
	defs = append(defs, terms...)
	defs = append(defs, patterns...)
	for i := range defs {
		if err := defs[i].Validate(); err != nil {
			return nil, fmt.Errorf("load glossary: %w", err)
		}
	}

	glossary := riinguist.NewGlossary(defs)
	return &Result{
		Glossary: glossary,
		Terms:    len(terms),
		Patterns: len(patterns),
		Checksum: Checksum(glossary),
	}, nil
}

// Checksum computes an xxhash fingerprint over every key and rendered entry
// of g in key order.
func Checksum(g *riinguist.Glossary) string {
	h := xxhash.New()
	for _, key := range g.Keys() {
		entry, _ := g.Lookup(key)
		_, _ = h.WriteString(key)
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(entry)
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
