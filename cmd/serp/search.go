package main

import (
	"fmt"

	"github.com/fwojciec/serp"
	"github.com/fwojciec/serp/term"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	if c.Pages < 1 {
		fmt.Fprintln(deps.Stderr, "error: page count must be at least 1")
		return serp.Errorf(serp.EINVALID, "page count must be at least 1")
	}

	session := c.Session(deps)
	p := deps.Printer()

	if c.Pages > 1 {
		pages, err := session.FetchPages(deps.Ctx, c.Pages)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
			return err
		}
		if c.JSON {
			return p.PrintJSON(pages)
		}
		for _, page := range pages {
			if err := c.print(p, page); err != nil {
				return err
			}
		}
		return nil
	}

	page, err := session.Search(deps.Ctx, c.Query())
	if page != nil {
		if perr := c.print(p, page); perr != nil {
			return perr
		}
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		if page == nil || !c.interactive() {
			return err
		}
	}

	if !c.interactive() {
		return nil
	}

	r := &REPL{
		Session:  session,
		In:       deps.Stdin,
		Out:      deps.Stdout,
		Printer:  p,
		Opener:   deps.Opener,
		Articles: deps.Articles,
	}
	return r.Run(deps.Ctx)
}

// interactive reports whether the omniprompt follows the first page.
func (c *SearchCmd) interactive() bool {
	return !c.JSON && !c.URLs && !c.NoPrompt
}

func (c *SearchCmd) print(p *term.Printer, page *serp.ResultPage) error {
	switch {
	case c.JSON:
		return p.PrintJSON(page)
	case c.URLs:
		return p.PrintURLs(page)
	}
	return p.PrintPage(page)
}
