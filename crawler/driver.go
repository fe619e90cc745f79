// Package crawler contains the crawl logic proper: per-page tab navigation
// and card collection, plus the catalog-order orchestration on top. All
// browser coupling is behind the PageDriver interface so the traversal rules
// can be exercised against fakes.
package crawler

import (
	"context"

	"github.com/go-rod/rod"
)

// Tab is one category selector inside the styles region. The zero Tab is the
// sentinel for pages with no tabs at all: downstream logic runs exactly one
// pass over it with no activation and no category label.
type Tab struct {
	// Text is the tab's display text, possibly empty.
	Text string

	el *rod.Element
}

// Sentinel reports whether this is the implicit "no tabs" placeholder.
func (t Tab) Sentinel() bool { return t.el == nil }

// PageDriver is the per-page browser surface the crawl logic depends on.
//
// Handles derived from the live DOM are short-lived: RegionHTML must be
// called again after every Activate, never cached across an activation
// boundary, because activations mutate the region in place.
type PageDriver interface {
	// Navigate drives the page to url without waiting for content.
	Navigate(ctx context.Context, url string) error

	// WaitRegion blocks until the styles region appears or the region wait
	// elapses. (false, nil) means the page is not published — an expected
	// condition, not an error.
	WaitRegion(ctx context.Context) (bool, error)

	// RegionHTML returns the current serialized content of the styles
	// region, re-fetching the region element.
	RegionHTML(ctx context.Context) (string, error)

	// Tabs enumerates the region's category tabs in order. When the page
	// has none it returns exactly one sentinel Tab.
	Tabs(ctx context.Context) ([]Tab, error)

	// Activate clicks the tab and blocks until the region content visibly
	// changed and at least one card-like element exists. It returns the
	// resolved category label ("" for the sentinel, "category_<idx>" when
	// the tab has no display text). A wait that never resolves fails with
	// a NAVIGATION_TIMEOUT crawl error.
	Activate(ctx context.Context, tab Tab, idx int) (string, error)
}
