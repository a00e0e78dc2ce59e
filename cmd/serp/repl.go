package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/serp"
	"github.com/fwojciec/serp/search"
	"github.com/fwojciec/serp/term"
)

// Prompt is shown before every omniprompt command.
const Prompt = "serp (? for help): "

const replHelp = `
  n, p, f        fetch the next, previous or first page
  index          open the result in the browser
  o [index|range]...
                 open results, or the search page without arguments
  r index        read the result as Markdown
  u              toggle full URLs
  j              toggle JSON output
  ?              show this help
  q, quit        exit
  *              any other input is a new search with the same options
`

// REPL is the omniprompt: an interactive loop over a search session.
type REPL struct {
	Session  *search.Session
	In       io.Reader
	Out      io.Writer
	Printer  *term.Printer
	Opener   serp.Opener
	Articles *ArticleReader

	// JSON prints pages and articles as JSON.
	JSON bool
}

// Run reads commands until quit or end of input. Command errors are
// printed and the loop continues.
func (r *REPL) Run(ctx context.Context) error {
	sc := bufio.NewScanner(r.In)
	for {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprint(r.Out, Prompt)
		if !sc.Scan() {
			fmt.Fprintln(r.Out)
			return sc.Err()
		}

		quit, err := r.Exec(ctx, sc.Text())
		if err != nil {
			_ = r.Printer.PrintError(errorMessage(err))
		}
		if quit {
			return nil
		}
	}
}

// Exec runs a single omniprompt command and reports whether the loop
// should stop.
func (r *REPL) Exec(ctx context.Context, line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	if len(fields) == 1 {
		switch fields[0] {
		case "q", "quit", "exit":
			return true, nil
		case "n":
			return false, r.show(r.Session.Next(ctx))
		case "p":
			return false, r.show(r.Session.Prev(ctx))
		case "f":
			return false, r.show(r.Session.First(ctx))
		case "u":
			r.Printer.ShowURLs = !r.Printer.ShowURLs
			return false, r.show(r.Session.Page(), nil)
		case "j":
			r.JSON = !r.JSON
			return false, r.show(r.Session.Page(), nil)
		case "?":
			_, err := io.WriteString(r.Out, replHelp)
			return false, err
		case "o":
			return false, r.openSearchPage()
		}
		if index, err := strconv.Atoi(fields[0]); err == nil {
			return false, r.open([]int{index})
		}
	}

	switch fields[0] {
	case "o":
		indices, err := parseIndices(fields[1:])
		if err != nil {
			return false, err
		}
		return false, r.open(indices)
	case "r":
		if len(fields) == 2 {
			index, err := strconv.Atoi(fields[1])
			if err != nil {
				return false, serp.Errorf(serp.EINVALID, "invalid index %q", fields[1])
			}
			return false, r.read(ctx, index)
		}
	}

	q := r.Session.Query
	q.Terms = strings.TrimSpace(line)
	q.Start = 0
	return false, r.show(r.Session.Search(ctx, q))
}

// show prints the page, if any, and passes err through. A partially
// parsed page is shown before its error.
func (r *REPL) show(page *serp.ResultPage, err error) error {
	if page == nil {
		return err
	}
	var perr error
	if r.JSON {
		perr = r.Printer.PrintJSON(page)
	} else {
		perr = r.Printer.PrintPage(page)
	}
	if err != nil {
		return err
	}
	return perr
}

func (r *REPL) result(index int) (*serp.Result, error) {
	res := r.Session.Page().Find(index)
	if res == nil {
		return nil, serp.Errorf(serp.ENOTFOUND, "no result with index %d", index)
	}
	return res, nil
}

func (r *REPL) open(indices []int) error {
	if r.Opener == nil {
		return serp.Errorf(serp.EINVALID, "no browser configured")
	}
	for _, index := range indices {
		res, err := r.result(index)
		if err != nil {
			return err
		}
		if err := r.Opener.Open(res.URL); err != nil {
			return err
		}
	}
	return nil
}

func (r *REPL) openSearchPage() error {
	page := r.Session.Page()
	if page == nil || page.URL == "" {
		return serp.Errorf(serp.ENOTFOUND, "no search page to open")
	}
	if r.Opener == nil {
		return serp.Errorf(serp.EINVALID, "no browser configured")
	}
	return r.Opener.Open(page.URL)
}

func (r *REPL) read(ctx context.Context, index int) error {
	res, err := r.result(index)
	if err != nil {
		return err
	}
	if r.Articles == nil {
		return serp.Errorf(serp.EINVALID, "reading articles is not available")
	}

	article, err := r.Articles.Read(ctx, res.URL)
	if err != nil {
		return err
	}
	if r.JSON {
		return r.Printer.PrintJSON(article)
	}
	return r.Printer.PrintArticle(article)
}

// parseIndices parses result indices and inclusive ranges such as "2-4".
func parseIndices(args []string) ([]int, error) {
	var indices []int
	for _, arg := range args {
		lo, hi, isRange := strings.Cut(arg, "-")
		first, err := strconv.Atoi(lo)
		if err != nil {
			return nil, serp.Errorf(serp.EINVALID, "invalid index %q", arg)
		}
		last := first
		if isRange {
			if last, err = strconv.Atoi(hi); err != nil || last < first {
				return nil, serp.Errorf(serp.EINVALID, "invalid range %q", arg)
			}
		}
		for i := first; i <= last; i++ {
			indices = append(indices, i)
		}
	}
	return indices, nil
}
