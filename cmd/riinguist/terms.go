package main

import "fmt"

// Run executes the terms command.
func (c *TermsCmd) Run(deps *Dependencies) error {
	keys := deps.Result.Glossary.Keys()
	if len(keys) == 0 {
		fmt.Fprintln(deps.Stdout, "No terms found.")
		return nil
	}

	for _, key := range keys {
		fmt.Fprintln(deps.Stdout, key)
	}
	return nil
}
