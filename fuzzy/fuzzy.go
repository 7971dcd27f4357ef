// Package fuzzy provides a trigram-based implementation of riinguist.Matcher.
package fuzzy

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/riinguist"
)

// DefaultThreshold is the minimum score a key needs to be returned.
const DefaultThreshold = riinguist.DefaultThreshold

// Ensure Matcher implements riinguist.Matcher at compile time.
var _ riinguist.Matcher = (*Matcher)(nil)

// Scorer returns the similarity of two strings in the range [0, 1].
type Scorer func(a, b string) float64

// Candidate is a key that passed the threshold, with its score.
type Candidate struct {
	Key   string
	Score float64
}

// Matcher ranks glossary keys by similarity to a query.
type Matcher struct {
	threshold float64
	score     Scorer
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithThreshold sets the minimum score. Keys scoring strictly below it
// are discarded. Defaults to DefaultThreshold.
func WithThreshold(threshold float64) Option {
	return func(m *Matcher) {
		m.threshold = threshold
	}
}

// WithScorer replaces the similarity measure. Defaults to Score.
func WithScorer(s Scorer) Option {
	return func(m *Matcher) {
		m.score = s
	}
}

// NewMatcher creates a new Matcher.
func NewMatcher(opts ...Option) *Matcher {
	m := &Matcher{
		threshold: DefaultThreshold,
		score:     Score,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// BestMatch returns the highest ranked key for query.
func (m *Matcher) BestMatch(query string, keys []string) (string, bool) {
	candidates := m.Rank(query, keys)
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[0].Key, true
}

// Rank scores every key against query and returns the keys at or above
// the threshold, best first. Ties on score go to the shorter key, then to
// the lexically smaller one, so the order never depends on input order.
func (m *Matcher) Rank(query string, keys []string) []Candidate {
	query = strings.ToLower(strings.TrimSpace(query))

	var candidates []Candidate
	for _, key := range keys {
		s := m.score(query, key)
		if s < m.threshold {
			continue
		}
		candidates = append(candidates, Candidate{Key: key, Score: s})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		la, lb := utf8.RuneCountInString(a.Key), utf8.RuneCountInString(b.Key)
		if la != lb {
			return la < lb
		}
		return a.Key < b.Key
	})

	return candidates
}
