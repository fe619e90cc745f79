// Package browser owns the headless browser session: launch flags,
// fingerprint masking, the single reused page, and the politeness gate in
// front of navigations. The crawl logic never touches launcher details; it
// only sees Navigate/Page/Close.
package browser

import (
	"context"
	"log/slog"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
	"github.com/openroad-data/stylecrawl/config"
	"github.com/openroad-data/stylecrawl/models"
	"github.com/ysmood/gson"
	"golang.org/x/time/rate"
)

const chromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

// Session is the exclusive, non-reentrant browser session shared across the
// whole crawl. One browser, one page, one DOM at a time.
type Session struct {
	browser *rod.Browser
	page    *rod.Page
	limiter *rate.Limiter
}

// NewSession launches a headless browser with the stealth flag set, connects,
// and prepares the single crawl page (stealth script + Chrome headers
// installed before any navigation).
func NewSession(browserCfg config.Browser, crawlerCfg config.Crawler) (*Session, error) {
	l := launcher.New().
		Headless(browserCfg.Headless).
		NoSandbox(browserCfg.NoSandbox)

	if browserCfg.Bin != "" {
		l = l.Bin(browserCfg.Bin)
	}
	if browserCfg.Proxy != "" {
		l = l.Proxy(browserCfg.Proxy)
	}

	// ── Stealth flags ────────────────────────────────────────────────
	l.Set(flags.Flag("disable-blink-features"), "AutomationControlled")
	l.Delete(flags.Flag("enable-automation"))
	l.Set(flags.Flag("disable-infobars"))
	l.Set(flags.Flag("disable-extensions"))
	l.Set(flags.Flag("disable-dev-shm-usage"))
	l.Set(flags.Flag("disable-default-apps"))
	l.Set(flags.Flag("disable-component-update"))
	l.Set(flags.Flag("no-first-run"))
	l.Set(flags.Flag("window-size"), "1920,1080")

	controlURL, err := l.Launch()
	if err != nil {
		return nil, models.NewCrawlError(
			models.ErrCodeBrowserCrash,
			"failed to launch browser",
			err,
		)
	}
	slog.Info("browser launched", "controlURL", controlURL)

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		return nil, models.NewCrawlError(
			models.ErrCodeBrowserCrash,
			"failed to connect to browser",
			err,
		)
	}

	page, err := b.Page(proto.TargetCreateTarget{})
	if err != nil {
		b.MustClose()
		return nil, models.NewCrawlError(
			models.ErrCodeBrowserCrash,
			"failed to create crawl page",
			err,
		)
	}

	// Stealth JS and headers must be installed before the first Navigate;
	// they only apply to navigations that happen after them.
	if _, err := page.EvalOnNewDocument(stealth.JS); err != nil {
		slog.Warn("stealth injection failed, proceeding without stealth", "error", err)
	}
	_ = proto.NetworkSetExtraHTTPHeaders{
		Headers: toHeadersMap(map[string]string{
			"User-Agent":      chromeUA,
			"Accept-Language": "en-US,en;q=0.9",
		}),
	}.Call(page)

	return &Session{
		browser: b,
		page:    page,
		limiter: rate.NewLimiter(rate.Limit(crawlerCfg.PagesPerSecond), crawlerCfg.Burst),
	}, nil
}

// Navigate drives the session page to url after the politeness limiter
// admits the load. It does not wait for any content beyond the navigation
// itself; content waits belong to the caller.
func (s *Session) Navigate(ctx context.Context, url string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return models.NewCrawlError(models.ErrCodeNavigation, "navigation canceled", err)
	}
	if err := s.page.Context(ctx).Navigate(url); err != nil {
		return models.NewCrawlError(models.ErrCodeNavigation, "navigation failed", err)
	}
	return nil
}

// Page exposes the session's single page for element queries and waits.
func (s *Session) Page() *rod.Page {
	return s.page
}

// Close kills the browser process. Call exactly once on the way out, even
// when the crawl loop failed partway through.
func (s *Session) Close() {
	slog.Info("browser session shutting down")
	s.browser.MustClose()
}

// toHeadersMap converts a plain string map to the proto.NetworkHeaders type
// (map[string]gson.JSON) required by NetworkSetExtraHTTPHeaders.
func toHeadersMap(headers map[string]string) proto.NetworkHeaders {
	m := make(proto.NetworkHeaders, len(headers))
	for k, v := range headers {
		m[k] = gson.New(v)
	}
	return m
}
