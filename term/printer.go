package term

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/serp"
)

// ANSI escape sequences used by the printer.
const (
	reset  = "\033[0m"
	cyan   = "\033[36m"
	green  = "\033[1;32m"
	yellow = "\033[33m"
	dim    = "\033[2m"
	red    = "\033[31m"
)

// indent is the column where titles, URLs and snippets start.
const indent = 5

// Printer writes result pages to a terminal.
type Printer struct {
	Out io.Writer

	// Width is the terminal width in columns. Zero means DefaultWidth.
	Width int

	// Color enables ANSI colors.
	Color bool

	// ShowURLs prints the full URL of each result instead of its domain.
	ShowURLs bool
}

// PrintPage prints the results of a page. Each result gets its index,
// title, URL and a snippet wrapped to the terminal width.
func (p *Printer) PrintPage(page *serp.ResultPage) error {
	if page == nil || len(page.Results) == 0 {
		_, err := fmt.Fprintln(p.Out, p.paint(dim, "No results."))
		return err
	}

	var b strings.Builder
	for _, r := range page.Results {
		p.writeResult(&b, r)
	}
	_, err := io.WriteString(p.Out, b.String())
	return err
}

func (p *Printer) writeResult(b *strings.Builder, r *serp.Result) {
	pad := strings.Repeat(" ", indent)

	b.WriteString("\n")
	b.WriteString(p.paint(cyan, fmt.Sprintf("%*d.", indent-2, r.Index)))
	b.WriteString(" ")
	b.WriteString(p.paint(green, r.Title))
	b.WriteString("\n")

	link := r.Domain()
	if p.ShowURLs {
		link = r.URL
	}
	b.WriteString(pad + p.paint(yellow, link) + "\n")

	for _, line := range Wrap(r.Snippet, p.width()-indent) {
		b.WriteString(pad + line + "\n")
	}
}

// PrintURLs prints one result URL per line.
func (p *Printer) PrintURLs(page *serp.ResultPage) error {
	if page == nil {
		return nil
	}
	var b strings.Builder
	for _, r := range page.Results {
		b.WriteString(r.URL + "\n")
	}
	_, err := io.WriteString(p.Out, b.String())
	return err
}

// PrintJSON prints v as indented JSON.
func (p *Printer) PrintJSON(v any) error {
	enc := json.NewEncoder(p.Out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintSuggestions prints one suggestion per line.
func (p *Printer) PrintSuggestions(suggestions []string) error {
	for _, s := range suggestions {
		if _, err := fmt.Fprintln(p.Out, s); err != nil {
			return err
		}
	}
	return nil
}

// PrintSearches prints history entries, newest first as given.
func (p *Printer) PrintSearches(searches []*serp.Search) error {
	if len(searches) == 0 {
		_, err := fmt.Fprintln(p.Out, p.paint(dim, "No searches recorded."))
		return err
	}

	var b strings.Builder
	for _, s := range searches {
		fmt.Fprintf(&b, "%s  %s  %s",
			p.paint(dim, s.ID),
			s.CreatedAt.Local().Format("2006-01-02 15:04"),
			p.paint(green, s.Terms),
		)
		if s.Start > 0 {
			fmt.Fprintf(&b, " (from %d)", s.Start)
		}
		if s.News {
			b.WriteString(" [news]")
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(p.Out, b.String())
	return err
}

// PrintArticle prints an article read from a result.
func (p *Printer) PrintArticle(a *serp.Article) error {
	_, err := io.WriteString(p.Out, serp.FormatArticle(a))
	return err
}

// PrintError prints an error message.
func (p *Printer) PrintError(msg string) error {
	_, err := fmt.Fprintln(p.Out, p.paint(red, "error: "+msg))
	return err
}

func (p *Printer) paint(color, s string) string {
	if !p.Color || s == "" {
		return s
	}
	return color + s + reset
}

func (p *Printer) width() int {
	if p.Width <= indent {
		return DefaultWidth
	}
	return p.Width
}
