package riinguist

// Matcher resolves a free-text query to the closest glossary key.
type Matcher interface {
	// BestMatch scores every key against query and returns the best one.
	// Returns false if no key is similar enough.
	BestMatch(query string, keys []string) (key string, ok bool)
}
