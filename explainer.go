package riinguist

import (
	"context"
	"strings"
)

// DefaultPrefix is the chat command that asks for an explanation.
const DefaultPrefix = "!explain"

// Replies for queries that do not resolve to a glossary entry.
const (
	PromptMessage   = "Please provide a Riichi Mahjong term for me to explain."
	NotFoundMessage = "No such term was found."
)

// Explainer answers chat commands with glossary entries.
type Explainer interface {
	// Explain returns the reply for a raw command such as "!explain riichi".
	// It never fails: an empty query yields PromptMessage and an unknown
	// term yields NotFoundMessage.
	Explain(ctx context.Context, query string) string
}

var _ Explainer = (*GlossaryExplainer)(nil)

// GlossaryExplainer resolves queries against an immutable Glossary.
type GlossaryExplainer struct {
	glossary *Glossary
	matcher  Matcher
	prefix   string
	keys     []string
}

// NewGlossaryExplainer returns an Explainer over g using m for matching.
// Occurrences of prefix are removed from queries before matching.
func NewGlossaryExplainer(g *Glossary, m Matcher, prefix string) *GlossaryExplainer {
	return &GlossaryExplainer{
		glossary: g,
		matcher:  m,
		prefix:   prefix,
		keys:     g.Keys(),
	}
}

// Explain implements Explainer.
func (e *GlossaryExplainer) Explain(_ context.Context, query string) string {
	term := StripPrefix(query, e.prefix)
	if term == "" {
		return PromptMessage
	}

	key, ok := e.matcher.BestMatch(term, e.keys)
	if !ok {
		return NotFoundMessage
	}

	entry, ok := e.glossary.Lookup(key)
	if !ok {
		return NotFoundMessage
	}
	return entry
}

// StripPrefix removes every occurrence of prefix from query and trims
// surrounding whitespace.
func StripPrefix(query, prefix string) string {
	if prefix != "" {
		query = strings.ReplaceAll(query, prefix, "")
	}
	return strings.TrimSpace(query)
}
