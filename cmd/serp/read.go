package main

import (
	"fmt"

	"github.com/fwojciec/serp"
)

// Run executes the read command.
func (c *ReadCmd) Run(deps *Dependencies) error {
	if c.URL == "" {
		fmt.Fprintln(deps.Stderr, "error: URL required")
		return serp.Errorf(serp.EINVALID, "URL required")
	}

	article, err := deps.Articles.Read(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	p := deps.Printer()
	if c.JSON {
		err = p.PrintJSON(article)
	} else {
		err = p.PrintArticle(article)
	}
	if err != nil {
		return err
	}

	if c.Output != "" {
		w := deps.NewArticleWriter(c.Output)
		if err := w.WriteArticle(deps.Ctx, article); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Saved article under %s\n", c.Output)
	}
	return nil
}
