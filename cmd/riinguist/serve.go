package main

import (
	"bufio"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Run executes the serve command. Each stdin line that starts with the
// command prefix as a whole word is answered on stdout, followed by a
// blank line. Other lines are ignored, as a chat bot ignores ordinary
// messages.
func (c *ServeCmd) Run(deps *Dependencies) error {
	prefix := deps.Config.Prefix

	scanner := bufio.NewScanner(deps.Stdin)
	for scanner.Scan() {
		if err := deps.Ctx.Err(); err != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if !isCommand(line, prefix) {
			continue
		}

		fmt.Fprintln(deps.Stdout, deps.Explainer.Explain(deps.Ctx, line))
		fmt.Fprintln(deps.Stdout)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}

// isCommand reports whether line invokes prefix: the prefix must be
// followed by whitespace or end the line.
func isCommand(line, prefix string) bool {
	rest, ok := strings.CutPrefix(line, prefix)
	if !ok {
		return false
	}
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsSpace(r)
}
