package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/bfscrawl"
	"github.com/fwojciec/bfscrawl/crawl"
	"github.com/fwojciec/bfscrawl/goquery"
	bfshttp "github.com/fwojciec/bfscrawl/http"
	"github.com/fwojciec/bfscrawl/rod"
	bfsslog "github.com/fwojciec/bfscrawl/slog"
	"github.com/fwojciec/bfscrawl/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, errorText(err))
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database holding the crawl log, if one was requested.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("bfscrawl"),
		kong.Description("Crawl a website breadth-first, printing each page URL once"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	// Configuration errors are fatal before anything is fetched.
	start, err := bfscrawl.ParseStartURL(cli.URL)
	if err != nil {
		return err
	}
	filter, err := bfscrawl.NewURLFilter(cli.Include, cli.Exclude)
	if err != nil {
		return err
	}
	if cli.Max < 0 {
		return bfscrawl.Errorf(bfscrawl.EINVALID, "--max must not be negative")
	}
	if cli.Retries < 0 {
		return bfscrawl.Errorf(bfscrawl.EINVALID, "--retries must not be negative")
	}

	logger := newLogger(stderr, cli.Verbose)

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Logger: logger,
	}

	timeout := cli.Timeout
	if timeout <= 0 {
		timeout = bfshttp.DefaultFetchTimeout
	}

	var fetcher bfscrawl.Fetcher
	if cli.Render {
		rodFetcher, err := rod.NewFetcher(rod.WithFetchTimeout(timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = rodFetcher
	} else {
		fetcher = bfshttp.NewFetcher(bfshttp.WithTimeout(timeout))
	}
	fetcher = crawl.NewRetryFetcher(fetcher, retryDelays(cli.Retries), logger)
	fetcher = bfsslog.NewLoggingFetcher(fetcher, logger)
	defer fetcher.Close()

	graph := &crawl.LinkGraph{
		Fetcher:   fetcher,
		Extractor: bfsslog.NewLoggingLinkExtractor(goquery.NewLinkExtractor(), logger),
		Logger:    logger,
	}

	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()

		run := &bfscrawl.Run{StartURL: start}
		if err := sqlite.NewRunService(m.DB).CreateRun(ctx, run); err != nil {
			return fmt.Errorf("failed to create run: %w", err)
		}
		graph.Pages = sqlite.NewPageService(m.DB)
		graph.RunID = run.ID
		logger.Info("crawl log", "path", cli.DB, "run", run.ID)
	}

	var provider bfscrawl.AdjacencyProvider[string] = graph
	if scope := newScope(start, cli.SameHost, cli.SameSite); scope != nil || len(cli.Include) > 0 || len(cli.Exclude) > 0 {
		provider = crawl.NewScopedProvider(provider, filter, scope)
	}
	deps.Provider = bfsslog.NewLoggingProvider(provider, logger)

	cmd := &CrawlCmd{
		Start: start,
		Max:   cli.Max,
		Delay: cli.Delay,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL      string        `arg:"" required:"" help:"Absolute http(s) URL to start crawling from"`
	Max      int           `short:"n" default:"100" help:"Maximum number of pages to visit (0 for no limit)"`
	Delay    time.Duration `short:"d" default:"0s" help:"Delay between page visits"`
	Timeout  time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Retries  int           `default:"0" help:"Extra fetch attempts per page, with 1s/2s/4s backoff"`
	Render   bool          `help:"Render pages in headless Chrome before extracting links"`
	SameHost bool          `xor:"scope" help:"Only follow links on the start URL's host"`
	SameSite bool          `xor:"scope" help:"Only follow links under the start URL's registrable domain"`
	Include  []string      `sep:"none" help:"Only follow URLs matching this regex (repeatable)"`
	Exclude  []string      `sep:"none" help:"Never follow URLs matching this regex (repeatable)"`
	DB       string        `help:"Record fetched pages in this SQLite database"`
	Verbose  bool          `short:"v" help:"Log debug output"`
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newScope returns the host scope selected by flags, or nil for none.
func newScope(start string, sameHost, sameSite bool) crawl.Scope {
	u, err := url.Parse(start)
	if err != nil {
		return nil
	}
	switch {
	case sameHost:
		return crawl.SameHost(u.Host)
	case sameSite:
		return crawl.SameSite(u.Host)
	}
	return nil
}

// retryDelays returns n backoff delays; past the defaults the last one repeats.
func retryDelays(n int) []time.Duration {
	defaults := crawl.DefaultRetryDelays()
	delays := make([]time.Duration, n)
	for i := range delays {
		delays[i] = defaults[min(i, len(defaults)-1)]
	}
	return delays
}

// errorText returns the message of an application error, or the raw error
// text for anything else.
func errorText(err error) string {
	var e *bfscrawl.Error
	if errors.As(err, &e) {
		return bfscrawl.ErrorMessage(err)
	}
	return err.Error()
}
