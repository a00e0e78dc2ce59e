package main

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/serp"
	"github.com/fwojciec/serp/search"
	"github.com/fwojciec/serp/term"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Searcher  serp.Searcher
	Suggester serp.Suggester
	History   serp.HistoryService
	Limiter   serp.DomainLimiter
	Opener    serp.Opener
	Articles  *ArticleReader

	// NewSeenSet creates the URL set used by --dedupe.
	NewSeenSet func() serp.SeenSet

	// NewArticleWriter creates a writer saving articles under dir.
	NewArticleWriter func(dir string) serp.ArticleWriter

	RetryDelays []time.Duration
	Color       bool
	Width       int
}

// Printer returns a printer for stdout.
func (d *Dependencies) Printer() *term.Printer {
	return &term.Printer{Out: d.Stdout, Width: d.Width, Color: d.Color}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug     bool          `short:"d" help:"Enable debug logging"`
	NoColor   bool          `name:"nocolor" default:"${nocolor}" env:"SERP_NOCOLOR" help:"Disable colored output"`
	UserAgent string        `name:"user-agent" default:"${user_agent}" env:"SERP_USER_AGENT" help:"HTTP User-Agent header"`
	Timeout   time.Duration `default:"${timeout}" env:"SERP_TIMEOUT" help:"HTTP request timeout"`
	Rate      float64       `default:"${rate}" env:"SERP_RATE" help:"Maximum requests per second to the search host"`

	Search  SearchCmd  `cmd:"" default:"withargs" help:"Search and browse results interactively (default command)"`
	Suggest SuggestCmd `cmd:"" help:"Show search suggestions for a prefix"`
	Read    ReadCmd    `cmd:"" help:"Read the main content of a page as Markdown"`
	History HistoryCmd `cmd:"" help:"Manage search history"`
}

// SearchCmd is the default "search" command.
type SearchCmd struct {
	Keywords []string `arg:"" help:"Search keywords"`

	Start     int    `short:"s" default:"0" help:"Start at the Nth result"`
	Count     int    `short:"n" default:"${count}" env:"SERP_COUNT" help:"Show N results per page"`
	News      bool   `short:"N" default:"${news}" help:"Show results from news section"`
	TLD       string `short:"c" name:"tld" default:"${tld}" env:"SERP_TLD" help:"Country-specific search with top-level domain"`
	Lang      string `short:"l" default:"${lang}" env:"SERP_LANG" help:"Display in language"`
	Exact     bool   `short:"x" help:"Disable automatic spelling correction"`
	Time      string `short:"t" help:"Time limit search (h5, d5, w5, m5, y5)"`
	Site      string `short:"w" help:"Search a site"`
	JSON      bool   `short:"j" name:"json" help:"Output in JSON format; implies --noprompt"`
	URLs      bool   `short:"u" name:"urls" help:"Print only result URLs, one per line; implies --noprompt"`
	NoPrompt  bool   `name:"noprompt" aliases:"np" help:"Search and exit, do not prompt"`
	Pages     int    `short:"p" default:"1" help:"Fetch N consecutive pages concurrently and exit"`
	Dedupe    bool   `help:"Hide URLs already shown in this session"`
	NoHistory bool   `name:"no-history" help:"Do not record searches in history"`
}

// Query builds the query described by the flags.
func (c *SearchCmd) Query() serp.Query {
	return serp.Query{
		Terms:    strings.Join(c.Keywords, " "),
		Start:    c.Start,
		Num:      c.Count,
		News:     c.News,
		TLD:      c.TLD,
		Lang:     c.Lang,
		Exact:    c.Exact,
		Duration: c.Time,
		Site:     c.Site,
	}
}

// Session creates a search session for the command.
func (c *SearchCmd) Session(deps *Dependencies) *search.Session {
	s := &search.Session{
		Searcher:    deps.Searcher,
		Limiter:     deps.Limiter,
		Logger:      deps.Logger,
		RetryDelays: deps.RetryDelays,
		Query:       c.Query(),
	}
	if !c.NoHistory {
		s.History = deps.History
	}
	if c.Dedupe && deps.NewSeenSet != nil {
		s.Seen = deps.NewSeenSet()
	}
	return s
}

// SuggestCmd is the "suggest" command.
type SuggestCmd struct {
	Prefix []string `arg:"" help:"Query prefix"`
	JSON   bool     `short:"j" name:"json" help:"Output in JSON format"`
}

// ReadCmd is the "read" command.
type ReadCmd struct {
	URL    string `arg:"" help:"Page URL"`
	Output string `short:"o" type:"path" help:"Also save the article as Markdown under this directory"`
	JSON   bool   `short:"j" name:"json" help:"Output in JSON format"`
}

// HistoryCmd groups the history subcommands.
type HistoryCmd struct {
	List   HistoryListCmd   `cmd:"" default:"1" help:"List recent searches"`
	Show   HistoryShowCmd   `cmd:"" help:"Show the results of a recorded search"`
	Delete HistoryDeleteCmd `cmd:"" help:"Delete a recorded search"`
	Clear  HistoryClearCmd  `cmd:"" help:"Delete all recorded searches"`
}

// HistoryListCmd is the "history list" subcommand.
type HistoryListCmd struct {
	Limit int    `default:"20" help:"Show at most N searches"`
	Terms string `help:"Only show searches containing these terms"`
	JSON  bool   `short:"j" name:"json" help:"Output in JSON format"`
}

// HistoryShowCmd is the "history show" subcommand.
type HistoryShowCmd struct {
	ID   string `arg:"" help:"Search ID"`
	JSON bool   `short:"j" name:"json" help:"Output in JSON format"`
}

// HistoryDeleteCmd is the "history delete" subcommand.
type HistoryDeleteCmd struct {
	ID string `arg:"" help:"Search ID"`
}

// HistoryClearCmd is the "history clear" subcommand.
type HistoryClearCmd struct {
	Force bool `help:"Confirm deletion"`
}
