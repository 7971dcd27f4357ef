package riinguist

import "sort"

// Glossary maps normalized term keys to rendered entries.
// It is built once by NewGlossary and never modified afterwards, so it is
// safe for concurrent use without locking.
type Glossary struct {
	entries     map[string]string
	keys        []string
	overwritten []string
}

// NewGlossary builds a glossary from definitions in order. When two
// definitions share a key the later one wins.
func NewGlossary(defs []Definition) *Glossary {
	g := &Glossary{entries: make(map[string]string, len(defs))}

	dup := make(map[string]bool)
	for i := range defs {
		key := defs[i].Key()
		if _, exists := g.entries[key]; exists && !dup[key] {
			dup[key] = true
			g.overwritten = append(g.overwritten, key)
		}
		g.entries[key] = defs[i].Render()
	}

	g.keys = make([]string, 0, len(g.entries))
	for key := range g.entries {
		g.keys = append(g.keys, key)
	}
	sort.Strings(g.keys)
	sort.Strings(g.overwritten)

	return g
}

// Lookup returns the rendered entry for key.
func (g *Glossary) Lookup(key string) (string, bool) {
	entry, ok := g.entries[key]
	return entry, ok
}

// Keys returns all keys in lexical order.
// The returned slice is a copy and may be modified by the caller.
func (g *Glossary) Keys() []string {
	keys := make([]string, len(g.keys))
	copy(keys, g.keys)
	return keys
}

// Len returns the number of entries.
func (g *Glossary) Len() int {
	return len(g.entries)
}

// Overwritten returns keys that appeared more than once in the input to
// NewGlossary, in lexical order.
func (g *Glossary) Overwritten() []string {
	keys := make([]string, len(g.overwritten))
	copy(keys, g.overwritten)
	return keys
}
