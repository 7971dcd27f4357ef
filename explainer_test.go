package riinguist_test

import (
	"context"
	"sync"
	"testing"

	"github.com/fwojciec/riinguist"
	"github.com/fwojciec/riinguist/fuzzy"
	"github.com/fwojciec/riinguist/mock"
	"github.com/stretchr/testify/assert"
)

func testGlossary() *riinguist.Glossary {
	return riinguist.NewGlossary([]riinguist.Definition{
		{Name: "Riichi", Details: ptr("ree-chee"), Description: "Declaring readiness."},
		{Name: "Pinfu", Details: ptr("one han, closed"), Description: "All sequences."},
	})
}

func TestGlossaryExplainer_Explain(t *testing.T) {
	t.Parallel()

	t.Run("returns prompt for empty query", func(t *testing.T) {
		t.Parallel()

		matcher := &mock.Matcher{
			BestMatchFn: func(query string, keys []string) (string, bool) {
				t.Fatal("matcher must not be called for empty query")
				return "", false
			},
		}
		e := riinguist.NewGlossaryExplainer(testGlossary(), matcher, riinguist.DefaultPrefix)

		for _, q := range []string{"", "   ", "!explain", "!explain   ", "\t!explain\n"} {
			assert.Equal(t, riinguist.PromptMessage, e.Explain(context.Background(), q), "query %q", q)
		}
	})

	t.Run("passes stripped query and all keys to matcher", func(t *testing.T) {
		t.Parallel()

		var gotQuery string
		var gotKeys []string
		matcher := &mock.Matcher{
			BestMatchFn: func(query string, keys []string) (string, bool) {
				gotQuery, gotKeys = query, keys
				return "pinfu", true
			},
		}
		e := riinguist.NewGlossaryExplainer(testGlossary(), matcher, riinguist.DefaultPrefix)

		reply := e.Explain(context.Background(), "!explain  pin fu ")

		assert.Equal(t, "pin fu", gotQuery)
		assert.Equal(t, []string{"pinfu", "riichi"}, gotKeys)
		assert.Equal(t, "**Pinfu** (one han, closed)\nAll sequences.", reply)
	})

	t.Run("returns not found when matcher has no match", func(t *testing.T) {
		t.Parallel()

		matcher := &mock.Matcher{
			BestMatchFn: func(string, []string) (string, bool) { return "", false },
		}
		e := riinguist.NewGlossaryExplainer(testGlossary(), matcher, riinguist.DefaultPrefix)

		assert.Equal(t, riinguist.NotFoundMessage, e.Explain(context.Background(), "!explain tenpai"))
	})

	t.Run("returns not found when matcher returns unknown key", func(t *testing.T) {
		t.Parallel()

		matcher := &mock.Matcher{
			BestMatchFn: func(string, []string) (string, bool) { return "kan", true },
		}
		e := riinguist.NewGlossaryExplainer(testGlossary(), matcher, riinguist.DefaultPrefix)

		assert.Equal(t, riinguist.NotFoundMessage, e.Explain(context.Background(), "kan"))
	})

	t.Run("resolves misspelled term with fuzzy matcher", func(t *testing.T) {
		t.Parallel()

		e := riinguist.NewGlossaryExplainer(testGlossary(), fuzzy.NewMatcher(), riinguist.DefaultPrefix)

		assert.Equal(t, "**Riichi** (ree-chee)\nDeclaring readiness.", e.Explain(context.Background(), "!explain riichii"))
	})

	t.Run("returns not found for unrelated term with fuzzy matcher", func(t *testing.T) {
		t.Parallel()

		e := riinguist.NewGlossaryExplainer(testGlossary(), fuzzy.NewMatcher(), riinguist.DefaultPrefix)

		assert.Equal(t, riinguist.NotFoundMessage, e.Explain(context.Background(), "!explain xyzzy"))
	})
}

func TestGlossaryExplainer_ConcurrentExplain(t *testing.T) {
	t.Parallel()

	e := riinguist.NewGlossaryExplainer(testGlossary(), fuzzy.NewMatcher(), riinguist.DefaultPrefix)
	queries := map[string]string{
		"!explain riichi":  "**Riichi** (ree-chee)\nDeclaring readiness.",
		"!explain pinfu":   "**Pinfu** (one han, closed)\nAll sequences.",
		"!explain xyzzy":   riinguist.NotFoundMessage,
		"!explain":         riinguist.PromptMessage,
		"!explain riichii": "**Riichi** (ree-chee)\nDeclaring readiness.",
	}

	var wg sync.WaitGroup
	for range 20 {
		for q, want := range queries {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.Equal(t, want, e.Explain(context.Background(), q))
			}()
		}
	}
	wg.Wait()
}

func TestStripPrefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "riichi", riinguist.StripPrefix("!explain riichi", "!explain"))
	assert.Equal(t, "riichi", riinguist.StripPrefix("  riichi  ", "!explain"))
	assert.Equal(t, "riichi", riinguist.StripPrefix("!explainriichi", "!explain"))
	assert.Equal(t, "!explain riichi", riinguist.StripPrefix("!explain riichi ", ""))
}
