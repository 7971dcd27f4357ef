package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/riinguist"
	main "github.com/fwojciec/riinguist/cmd/riinguist"
	"github.com/fwojciec/riinguist/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists keys in order", func(t *testing.T) {
		t.Parallel()

		g := riinguist.NewGlossary([]riinguist.Definition{
			{Name: "Tsumo", Description: "Self-draw win."},
			{Name: "Ron", Description: "Win on discard."},
		})
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Result: &scrape.Result{Glossary: g}}

		err := (&main.TermsCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "ron\ntsumo\n", stdout.String())
	})

	t.Run("reports empty glossary", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Result: &scrape.Result{Glossary: riinguist.NewGlossary(nil)}}

		err := (&main.TermsCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "No terms found.\n", stdout.String())
	})
}

func TestStatsCmd_Run(t *testing.T) {
	t.Parallel()

	g := riinguist.NewGlossary([]riinguist.Definition{
		{Name: "Pinfu", Description: "No-points hand."},
		{Name: "Pinfu", Description: "All sequences."},
		{Name: "Ron", Description: "Win on discard."},
	})
	stdout := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Config: riinguist.DefaultConfig(),
		Result: &scrape.Result{Glossary: g, Terms: 2, Patterns: 1, Checksum: scrape.Checksum(g)},
	}

	err := (&main.StatsCmd{}).Run(deps)

	require.NoError(t, err)
	output := stdout.String()
	assert.Contains(t, output, "Terminology: 2 ("+riinguist.DefaultTermsURL+")")
	assert.Contains(t, output, "Yaku:        1 ("+riinguist.DefaultPatternsURL+")")
	assert.Contains(t, output, "Entries:     2")
	assert.Contains(t, output, "Duplicates:  1")
	assert.Contains(t, output, "Checksum:    "+scrape.Checksum(g))
}
