package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/openroad-data/stylecrawl/config"
	"github.com/openroad-data/stylecrawl/crawler"
	"github.com/openroad-data/stylecrawl/output"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	flagCatalog   string
	flagOutput    string
	flagHeadless  bool
	flagProbe     bool
	flagLogLevel  string
	flagLogFormat string
)

func main() {
	root := &cobra.Command{
		Use:   "stylecrawl",
		Short: "Scrape vehicle style/trim specifications from kbb.com model pages",
		Long: `stylecrawl drives one headless browser session across a (brand, model,
year) catalog of kbb.com model pages, activates each style category tab,
parses the style cards, and writes the combined result table to CSV.

Missing pages and unparseable cards are expected and skipped; the run is
best-effort and exits 0 even when individual targets fail.`,
		SilenceUsage: true,
		RunE:         run,
	}

	root.Flags().StringVar(&flagCatalog, "catalog", "", "JSON5 catalog file (omit for the built-in catalog)")
	root.Flags().StringVar(&flagOutput, "output", "", "output CSV path (default <output dir>/<csv name> from env)")
	root.Flags().BoolVar(&flagHeadless, "headless", true, "run the browser headless")
	root.Flags().BoolVar(&flagProbe, "probe", true, "HTTP-probe targets before navigating")
	root.Flags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
	root.Flags().StringVar(&flagLogFormat, "log-format", "", "log format: text or json")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	start := time.Now()

	// ── 1. Load configuration (env first, flags override) ───────────
	cfg := config.Load()
	if cmd.Flags().Changed("headless") {
		cfg.Browser.Headless = flagHeadless
	}
	if cmd.Flags().Changed("probe") {
		cfg.Crawler.Probe = flagProbe
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFormat != "" {
		cfg.Log.Format = flagLogFormat
	}

	// ── 2. Initialise structured logging ────────────────────────────
	initLogger(cfg.Log)

	// ── 3. Resolve the catalog ──────────────────────────────────────
	catalog := config.DefaultCatalog()
	if flagCatalog != "" {
		var err error
		if catalog, err = config.LoadCatalog(flagCatalog); err != nil {
			return err
		}
	}
	slog.Info("stylecrawl starting",
		"targets", catalog.TargetCount(),
		"headless", cfg.Browser.Headless,
		"probe", cfg.Crawler.Probe,
	)

	// ── 4. Crawl (session lifetime is owned by crawler.Crawl) ───────
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	table, err := crawler.Crawl(ctx, cfg, catalog)
	if err != nil {
		// Partial results may still be worth keeping; report the failure
		// and fall through to persistence with whatever was scraped.
		slog.Error("crawl aborted", "error", err, "rowsSoFar", len(table))
	}

	// ── 5. Persist (skip on empty) ──────────────────────────────────
	if len(table) == 0 {
		slog.Warn("no data scraped, CSV not written")
		if err != nil {
			return err
		}
		return nil
	}

	csvPath := flagOutput
	if csvPath == "" {
		csvPath = filepath.Join(cfg.Output.Dir, cfg.Output.CSVName)
	}
	if werr := output.WriteCSV(csvPath, table); werr != nil {
		slog.Error("failed to write CSV", "path", csvPath, "error", werr)
		return werr
	}

	slog.Info("crawl finished",
		"rows", len(table),
		"csv", csvPath,
		"elapsed", time.Since(start).Round(time.Millisecond).String(),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "scraped %d styles -> %s\n", len(table), csvPath)
	return nil
}

// initLogger configures slog. When a log file is configured the handler
// writes to a size-rotated file instead of stdout.
func initLogger(cfg config.Log) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var out io.Writer = os.Stdout
	if cfg.File != "" {
		out = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    20, // MB
			MaxBackups: 3,
			MaxAge:     14, // days
			Compress:   true,
		}
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	slog.SetDefault(slog.New(handler))
}
