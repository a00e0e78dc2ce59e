package main

import (
	"fmt"

	"github.com/fwojciec/serp"
)

// Run executes the history list subcommand.
func (c *HistoryListCmd) Run(deps *Dependencies) error {
	filter := serp.SearchFilter{Limit: c.Limit}
	if c.Terms != "" {
		filter.Terms = &c.Terms
	}

	searches, err := deps.History.FindSearches(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	p := deps.Printer()
	if c.JSON {
		return p.PrintJSON(searches)
	}
	return p.PrintSearches(searches)
}

// Run executes the history show subcommand.
func (c *HistoryShowCmd) Run(deps *Dependencies) error {
	s, err := deps.History.FindSearchByID(deps.Ctx, c.ID)
	if err != nil {
		if serp.ErrorCode(err) == serp.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: search %q not found. Use 'serp history list' to see recorded searches.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		}
		return err
	}

	p := deps.Printer()
	if c.JSON {
		return p.PrintJSON(s)
	}

	fmt.Fprintf(deps.Stdout, "%s  (%s)\n", s.Terms, s.CreatedAt.Local().Format("2006-01-02 15:04"))
	return p.PrintPage(&serp.ResultPage{
		Query: serp.Query{
			Terms: s.Terms,
			Start: s.Start,
			Num:   s.Num,
			News:  s.News,
			TLD:   s.TLD,
		},
		Results: s.Results,
		Skipped: s.Skipped,
	})
}

// Run executes the history delete subcommand.
func (c *HistoryDeleteCmd) Run(deps *Dependencies) error {
	if err := deps.History.DeleteSearch(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Deleted search %s\n", c.ID)
	return nil
}

// Run executes the history clear subcommand.
func (c *HistoryClearCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return serp.Errorf(serp.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.History.ClearHistory(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "History cleared")
	return nil
}
