package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/serp"
	"github.com/fwojciec/serp/bloom"
	"github.com/fwojciec/serp/fs"
	"github.com/fwojciec/serp/goquery"
	serphtml "github.com/fwojciec/serp/html"
	"github.com/fwojciec/serp/htmltomarkdown"
	serphttp "github.com/fwojciec/serp/http"
	"github.com/fwojciec/serp/readability"
	"github.com/fwojciec/serp/search"
	serpslog "github.com/fwojciec/serp/slog"
	"github.com/fwojciec/serp/sqlite"
	"github.com/fwojciec/serp/term"
	"github.com/fwojciec/serp/trafilatura"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// A missing .env file is fine.
	_ = godotenv.Load()

	m := NewMain()

	// Errors are reported on stderr by the commands themselves.
	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database and config paths. Set before calling Run().
	DBPath     string
	ConfigPath string

	// Stdin feeds the omniprompt.
	Stdin io.Reader

	// Terminal settings. Color is further disabled by --nocolor.
	Color bool
	Width int

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing. Nil fields are created by Run.
	Searcher  serp.Searcher
	Suggester serp.Suggester
	Fetcher   serp.Fetcher
	Opener    serp.Opener
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:     defaultDBPath(),
		ConfigPath: defaultConfigPath(),
		Stdin:      os.Stdin,
		Color:      term.IsTerminal(os.Stdout),
		Width:      term.Size(os.Stdout),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := LoadConfig(m.ConfigPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", errorMessage(err))
		return err
	}

	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
		Width:  m.Width,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("serp"),
		kong.Description("Search Google from the command line."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars(cfg.Vars()),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		fmt.Fprintln(stderr, "error: no keywords specified")
		return serp.Errorf(serp.EINVALID, "no keywords specified")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	logger := serpslog.NewLogger(stderr, cli.Debug)
	deps.Logger = logger
	deps.Color = m.Color && !cli.NoColor

	httpOpts := []serphttp.Option{
		serphttp.WithTimeout(cli.Timeout),
		serphttp.WithUserAgent(cli.UserAgent),
	}

	// Open the history database only for commands that use it.
	if cmd == "history" || (cmd == "search" && !cli.Search.NoHistory) {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "error: failed to open database at %q: %s\n", m.DBPath, err)
			fmt.Fprintf(stderr, "Hint: Set SERP_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		deps.History = sqlite.NewHistoryService(m.DB)
	}

	switch cmd {
	case "search":
		if m.Searcher == nil {
			detector := serpslog.NewLoggingDetector(goquery.NewDetector(), logger)
			m.Searcher = serphttp.NewSearcher(newParser, detector, httpOpts...)
		}
		deps.Searcher = serpslog.NewLoggingSearcher(m.Searcher, logger)
		deps.Limiter = search.NewDomainLimiter(cli.Rate, 1)
		deps.NewSeenSet = func() serp.SeenSet {
			return bloom.NewFilter(bloom.DefaultCapacity, bloom.DefaultFPRate)
		}
		if m.Opener == nil {
			m.Opener = NewBrowser()
		}
		deps.Opener = m.Opener
		deps.Articles = m.articleReader(httpOpts, logger)
		defer deps.Articles.Fetcher.Close()

	case "suggest":
		if m.Suggester == nil {
			m.Suggester = serphttp.NewSuggestService(httpOpts...)
		}
		deps.Suggester = serpslog.NewLoggingSuggester(m.Suggester, logger)

	case "read":
		deps.Articles = m.articleReader(httpOpts, logger)
		defer deps.Articles.Fetcher.Close()
		deps.NewArticleWriter = func(dir string) serp.ArticleWriter {
			return fs.NewWriter(dir)
		}
	}

	return kongCtx.Run(deps)
}

func (m *Main) articleReader(opts []serphttp.Option, logger *slog.Logger) *ArticleReader {
	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = serphttp.NewFetcher(opts...)
	}
	return &ArticleReader{
		Fetcher:      serpslog.NewLoggingFetcher(fetcher, logger),
		NewExtractor: newExtractor,
		NewConverter: newConverter,
	}
}

func newParser(news bool) serp.Parser {
	return serphtml.NewParser(serphtml.WithNews(news))
}

// newExtractor returns trafilatura with a readability fallback that
// resolves relative links against the page URL.
func newExtractor(pageURL string) serp.Extractor {
	var opts []trafilatura.Option
	if fallback, err := readability.NewExtractorForURL(pageURL); err == nil {
		opts = append(opts, trafilatura.WithFallback(fallback))
	}
	return trafilatura.NewExtractor(opts...)
}

func newConverter(pageURL string) serp.Converter {
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return htmltomarkdown.NewConverter()
	}
	return htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(u.Scheme + "://" + u.Host))
}

// errorMessage returns the message of an application error, or the full
// error text for anything else.
func errorMessage(err error) string {
	if serp.ErrorCode(err) == serp.EINTERNAL {
		return err.Error()
	}
	return serp.ErrorMessage(err)
}
