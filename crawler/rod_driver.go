package crawler

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openroad-data/stylecrawl/browser"
	"github.com/openroad-data/stylecrawl/config"
	"github.com/openroad-data/stylecrawl/models"
)

// DOM anchors for the source site. The "styles" element id is stable across
// model pages and years; everything else hangs off it.
const (
	regionSelector = "#styles"
	tabSelector    = `#styles button[role="tab"], #styles button[aria-selected]`
	cardSelector   = `#styles a[title]`
)

// RodDriver implements PageDriver on the shared rod browser session.
type RodDriver struct {
	session *browser.Session
	cfg     config.Crawler
}

// NewRodDriver wraps session with the crawl wait policy.
func NewRodDriver(session *browser.Session, cfg config.Crawler) *RodDriver {
	return &RodDriver{session: session, cfg: cfg}
}

func (d *RodDriver) Navigate(ctx context.Context, url string) error {
	return d.session.Navigate(ctx, url)
}

// WaitRegion waits for the styles region with the configured region wait.
// A deadline without the region means the brand/model/year is not published,
// which is routine, so the timeout maps to (false, nil) rather than an error.
func (d *RodDriver) WaitRegion(ctx context.Context) (bool, error) {
	p := d.session.Page().Context(ctx).Timeout(d.cfg.RegionWait)
	_, err := p.Element(regionSelector)
	return classifyRegionWait(err)
}

// classifyRegionWait maps the region wait outcome. Only the wait's own
// deadline means "not published"; cancellation (Ctrl-C, parent context gone)
// is a real error, not a missing page.
func classifyRegionWait(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, context.Canceled):
		return false, models.NewCrawlError(
			models.ErrCodeNavigation,
			"region wait canceled",
			err,
		)
	case errors.Is(err, context.DeadlineExceeded):
		return false, nil
	default:
		return false, models.NewCrawlError(
			models.ErrCodeNavigation,
			"waiting for styles region failed",
			err,
		)
	}
}

// RegionHTML re-fetches the region element and serializes it. Never cache
// the result across an Activate: the region mutates in place.
func (d *RodDriver) RegionHTML(ctx context.Context) (string, error) {
	p := d.session.Page().Context(ctx).Timeout(d.cfg.RegionWait)
	el, err := p.Element(regionSelector)
	if err != nil {
		return "", models.NewCrawlError(
			models.ErrCodeNavigation,
			"styles region disappeared",
			err,
		)
	}
	html, err := el.HTML()
	if err != nil {
		return "", models.NewCrawlError(
			models.ErrCodeNavigation,
			"failed to serialize styles region",
			err,
		)
	}
	return html, nil
}

// Tabs enumerates category tab buttons. No tabs is common (single-body-style
// models); the sentinel keeps the downstream loop branch-free.
func (d *RodDriver) Tabs(ctx context.Context) ([]Tab, error) {
	els, err := d.session.Page().Context(ctx).Elements(tabSelector)
	if err != nil {
		return nil, models.NewCrawlError(
			models.ErrCodeNavigation,
			"failed to enumerate style tabs",
			err,
		)
	}
	if len(els) == 0 {
		return []Tab{{}}, nil
	}
	tabs := make([]Tab, len(els))
	for i, el := range els {
		text, textErr := el.Text()
		if textErr != nil {
			text = ""
		}
		tabs[i] = Tab{Text: strings.TrimSpace(text), el: el}
	}
	return tabs, nil
}

// Activate clicks the tab via JS (the button may be overlaid or off-screen,
// which defeats a trusted pointer click) and synchronizes on the region's
// content hash changing from its pre-click baseline, then on at least one
// card existing, so a still-rendering view is never read.
func (d *RodDriver) Activate(ctx context.Context, tab Tab, idx int) (string, error) {
	if tab.Sentinel() {
		return "", nil
	}
	label := tab.Text
	if label == "" {
		label = fmt.Sprintf("category_%d", idx)
	}

	p := d.session.Page().Context(ctx)

	baseline, err := d.regionHash(ctx)
	if err != nil {
		return label, err
	}

	if _, err := tab.el.Eval(`() => this.click()`); err != nil {
		return label, models.NewCrawlError(
			models.ErrCodeNavigation,
			fmt.Sprintf("clicking tab %q failed", label),
			err,
		)
	}

	deadline := time.Now().Add(d.cfg.TabWait)
	for {
		h, hashErr := d.regionHash(ctx)
		if hashErr == nil && h != baseline {
			break
		}
		if time.Now().After(deadline) {
			return label, models.NewCrawlError(
				models.ErrCodeNavTimeout,
				fmt.Sprintf("tab %q: region content did not change within %s", label, d.cfg.TabWait),
				hashErr,
			)
		}
		select {
		case <-ctx.Done():
			return label, models.NewCrawlError(
				models.ErrCodeNavTimeout,
				fmt.Sprintf("tab %q: wait canceled", label),
				ctx.Err(),
			)
		case <-time.After(d.cfg.SettleInterval):
		}
	}

	// Content changed, but the new view may still be streaming in. Require
	// at least one card-like anchor before reading.
	if err := p.Timeout(d.cfg.TabWait).WaitElementsMoreThan(cardSelector, 0); err != nil {
		return label, models.NewCrawlError(
			models.ErrCodeNavTimeout,
			fmt.Sprintf("tab %q: no style cards appeared after activation", label),
			err,
		)
	}

	return label, nil
}

// regionHash fingerprints the region's current serialized content for
// change detection.
func (d *RodDriver) regionHash(ctx context.Context) (string, error) {
	html, err := d.RegionHTML(ctx)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256([]byte(html))
	return fmt.Sprintf("%x", sum), nil
}

var _ PageDriver = (*RodDriver)(nil)
