package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/riinguist"
)

// Run executes the explain command.
func (c *ExplainCmd) Run(deps *Dependencies) error {
	query := strings.Join(c.Query, " ")

	if c.Scores {
		term := riinguist.StripPrefix(query, deps.Config.Prefix)
		if term == "" {
			fmt.Fprintln(deps.Stdout, riinguist.PromptMessage)
			return nil
		}
		candidates := deps.Matcher.Rank(term, deps.Result.Glossary.Keys())
		if len(candidates) == 0 {
			fmt.Fprintln(deps.Stdout, "No matching terms.")
			return nil
		}
		for _, cand := range candidates {
			fmt.Fprintf(deps.Stdout, "%.3f  %s\n", cand.Score, cand.Key)
		}
		return nil
	}

	fmt.Fprintln(deps.Stdout, deps.Explainer.Explain(deps.Ctx, query))
	return nil
}
