package mock

import "github.com/fwojciec/riinguist"

var _ riinguist.Matcher = (*Matcher)(nil)

// Matcher is a mock implementation of riinguist.Matcher.
type Matcher struct {
	BestMatchFn func(query string, keys []string) (string, bool)
}

func (m *Matcher) BestMatch(query string, keys []string) (string, bool) {
	return m.BestMatchFn(query, keys)
}
