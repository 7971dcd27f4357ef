package main

import "fmt"

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	r := deps.Result

	fmt.Fprintf(deps.Stdout, "Terminology: %d (%s)\n", r.Terms, deps.Config.TermsURL)
	fmt.Fprintf(deps.Stdout, "Yaku:        %d (%s)\n", r.Patterns, deps.Config.PatternsURL)
	fmt.Fprintf(deps.Stdout, "Entries:     %d\n", r.Glossary.Len())
	fmt.Fprintf(deps.Stdout, "Duplicates:  %d\n", len(r.Glossary.Overwritten()))
	fmt.Fprintf(deps.Stdout, "Checksum:    %s\n", r.Checksum)
	return nil
}
