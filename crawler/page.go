package crawler

import (
	"context"
	"log/slog"

	"github.com/openroad-data/stylecrawl/extract"
	"github.com/openroad-data/stylecrawl/models"
)

// PageCrawler walks one model page: navigate, wait for the styles region,
// then for every tab state collect and parse the visible cards.
type PageCrawler struct {
	driver PageDriver
}

// NewPageCrawler builds a page crawler over driver.
func NewPageCrawler(driver PageDriver) *PageCrawler {
	return &PageCrawler{driver: driver}
}

// CrawlPage returns every parseable style record on the page across all tab
// states. A page whose styles region never appears is not an error — it
// yields (nil, nil) and a diagnostic. Errors mid-page (a tab activation that
// never settles, a vanished region) abandon the rest of the page and
// propagate; the browser session itself stays usable.
func (c *PageCrawler) CrawlPage(ctx context.Context, url string) (models.ResultTable, error) {
	slog.Info("visiting", "url", url)

	if err := c.driver.Navigate(ctx, url); err != nil {
		return nil, err
	}

	found, err := c.driver.WaitRegion(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		slog.Info("styles region never appeared, treating page as not published", "url", url)
		return nil, nil
	}

	tabs, err := c.driver.Tabs(ctx)
	if err != nil {
		return nil, err
	}

	var rows models.ResultTable
	for idx, tab := range tabs {
		label, err := c.driver.Activate(ctx, tab, idx)
		if err != nil {
			return nil, err
		}
		if label != "" {
			slog.Info("activated style tab", "category", label)
		}

		// Fresh snapshot per tab state: the activation invalidated any
		// previously fetched region content.
		regionHTML, err := c.driver.RegionHTML(ctx)
		if err != nil {
			return nil, err
		}
		cards, err := extract.Cards(regionHTML)
		if err != nil {
			return nil, models.NewCrawlError(
				models.ErrCodeInternal,
				"parsing styles region snapshot failed",
				err,
			)
		}

		for _, card := range cards {
			rec, ok := extract.ParseCard(card.Lines)
			if !ok {
				slog.Debug("dropping unparseable style card",
					"title", card.Title, "lines", len(card.Lines))
				continue
			}
			rows = append(rows, rec)
		}
	}

	slog.Info("page crawl complete", "url", url, "styles", len(rows))
	return rows, nil
}
