package crawler

import (
	"context"
	"log/slog"
	"os"

	"github.com/openroad-data/stylecrawl/browser"
	"github.com/openroad-data/stylecrawl/config"
	"github.com/openroad-data/stylecrawl/models"
	"github.com/schollz/progressbar/v3"
)

// PageCrawlFunc crawls a single page URL. It is a function type so the
// orchestration loop can be tested with a canned implementation.
type PageCrawlFunc func(ctx context.Context, url string) (models.ResultTable, error)

// ExistenceProbe is the optional cheap pre-navigation existence check.
type ExistenceProbe interface {
	Exists(ctx context.Context, url string) (bool, error)
}

// Orchestrator iterates the catalog's (brand, model, year) product in order,
// crawls each page, and stamps non-empty results with their target tags.
type Orchestrator struct {
	catalog   *config.Catalog
	crawlPage PageCrawlFunc
	probe     ExistenceProbe // nil disables probing

	// Progress enables the interactive progress bar over catalog targets.
	Progress bool
}

// NewOrchestrator builds an orchestrator. probe may be nil.
func NewOrchestrator(catalog *config.Catalog, crawlPage PageCrawlFunc, probe ExistenceProbe) *Orchestrator {
	return &Orchestrator{catalog: catalog, crawlPage: crawlPage, probe: probe}
}

// Run crawls the whole catalog sequentially and returns the combined result
// table, possibly empty. Per-target failures are diagnostics, not run
// failures; only a browser crash aborts the run, and even then the rows
// accumulated so far are returned alongside the error.
func (o *Orchestrator) Run(ctx context.Context) (models.ResultTable, error) {
	var bar *progressbar.ProgressBar
	if o.Progress {
		bar = progressbar.NewOptions(o.catalog.TargetCount(),
			progressbar.OptionSetDescription("crawling catalog"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	var all models.ResultTable
	for _, b := range o.catalog.Brands {
		for _, model := range b.Models {
			for _, year := range o.catalog.Years {
				target := models.CrawlTarget{Brand: b.Brand, Model: model, Year: year}
				rows, err := o.crawlTarget(ctx, target)
				if bar != nil {
					_ = bar.Add(1)
				}
				if err != nil {
					return all, err
				}
				all = append(all, rows...)
			}
		}
	}
	return all, nil
}

// crawlTarget crawls one target and stamps its rows. The returned error is
// non-nil only for run-fatal conditions (browser crash, cancellation).
func (o *Orchestrator) crawlTarget(ctx context.Context, target models.CrawlTarget) (models.ResultTable, error) {
	url := target.URL()

	if o.probe != nil {
		exists, err := o.probe.Exists(ctx, url)
		if err != nil {
			slog.Debug("existence probe inconclusive", "target", target.String(), "error", err)
		}
		if !exists {
			slog.Info("target not published (HTTP 404), skipping navigation", "target", target.String())
			return nil, nil
		}
	}

	rows, err := o.crawlPage(ctx, url)
	if err != nil {
		if code := models.ErrorCode(err); code != models.ErrCodeBrowserCrash && ctx.Err() == nil {
			slog.Warn("page crawl failed, continuing with next target",
				"target", target.String(), "code", code, "error", err)
			return nil, nil
		}
		return nil, err
	}
	if len(rows) == 0 {
		// Nothing scraped: no tagging, no rows. Distinct from an error.
		return nil, nil
	}

	brand := models.Capitalize(target.Brand)
	model := models.Capitalize(target.Model)
	for i := range rows {
		rows[i].Brand = brand
		rows[i].Model = model
		rows[i].Year = target.Year
	}
	slog.Info("target scraped", "target", target.String(), "styles", len(rows))
	return rows, nil
}

// Crawl is the end-to-end entry point: it validates the catalog, constructs
// the one shared browser session, runs the orchestrator, and releases the
// session exactly once regardless of how far the crawl got.
func Crawl(ctx context.Context, cfg *config.Config, catalog *config.Catalog) (models.ResultTable, error) {
	if err := catalog.Validate(); err != nil {
		return nil, models.NewCrawlError(models.ErrCodeInvalidInput, "invalid catalog", err)
	}

	session, err := browser.NewSession(cfg.Browser, cfg.Crawler)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	pages := NewPageCrawler(NewRodDriver(session, cfg.Crawler))

	var probe ExistenceProbe
	if cfg.Crawler.Probe {
		probe = browser.NewProber(cfg.Browser.Proxy, cfg.Crawler.RegionWait)
	}

	o := NewOrchestrator(catalog, pages.CrawlPage, probe)
	o.Progress = true
	return o.Run(ctx)
}
