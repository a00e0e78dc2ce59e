package main

import (
	"fmt"
	"strings"
)

// Run executes the suggest command.
func (c *SuggestCmd) Run(deps *Dependencies) error {
	suggestions, err := deps.Suggester.Suggest(deps.Ctx, strings.Join(c.Prefix, " "))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	p := deps.Printer()
	if c.JSON {
		return p.PrintJSON(suggestions)
	}
	return p.PrintSuggestions(suggestions)
}
