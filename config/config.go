package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Browser Browser
	Crawler Crawler
	Log     Log
	Output  Output
}

// Browser controls the Rod browser instance.
type Browser struct {
	// Headless controls whether the browser runs headless.
	Headless bool // default: true

	// NoSandbox disables Chrome's sandbox (needed in Docker).
	NoSandbox bool // default: false

	// Bin overrides the Chromium binary path.
	Bin string

	// Proxy is the proxy URL for all requests.
	Proxy string
}

// Crawler controls page navigation and extraction behavior.
type Crawler struct {
	// RegionWait is how long to wait for the styles region to appear after
	// navigation. A page that never shows the region within this window is
	// treated as not published, not as an error.
	RegionWait time.Duration // default: 15s

	// TabWait is how long a tab activation may take to visibly change the
	// region content before the page is abandoned.
	TabWait time.Duration // default: 15s

	// SettleInterval is the polling interval for content-change waits.
	SettleInterval time.Duration // default: 250ms

	// PagesPerSecond is the sustained politeness rate for page navigations.
	PagesPerSecond float64 // default: 0.5

	// Burst is the navigation limiter burst size.
	Burst int // default: 1

	// Probe toggles the cheap HTTP existence check before each navigation.
	Probe bool // default: true
}

// Log controls structured logging.
type Log struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "text"

	// File, when set, sends logs to a size-rotated file instead of stdout.
	File string
}

// Output controls result persistence.
type Output struct {
	// Dir is the directory the CSV is written into.
	Dir string // default: "data/raw"

	// CSVName is the result file name.
	CSVName string // default: "car_data.csv"
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Browser: Browser{
			Headless:  envBoolOr("STYLECRAWL_HEADLESS", true),
			NoSandbox: envBoolOr("STYLECRAWL_NO_SANDBOX", false),
			Bin:       os.Getenv("STYLECRAWL_BROWSER_BIN"),
			Proxy:     os.Getenv("STYLECRAWL_PROXY"),
		},
		Crawler: Crawler{
			RegionWait:     envDurationOr("STYLECRAWL_REGION_WAIT", 15*time.Second),
			TabWait:        envDurationOr("STYLECRAWL_TAB_WAIT", 15*time.Second),
			SettleInterval: envDurationOr("STYLECRAWL_SETTLE_INTERVAL", 250*time.Millisecond),
			PagesPerSecond: envFloatOr("STYLECRAWL_PAGES_PER_SECOND", 0.5),
			Burst:          envIntOr("STYLECRAWL_BURST", 1),
			Probe:          envBoolOr("STYLECRAWL_PROBE", true),
		},
		Log: Log{
			Level:  envOr("STYLECRAWL_LOG_LEVEL", "info"),
			Format: envOr("STYLECRAWL_LOG_FORMAT", "text"),
			File:   os.Getenv("STYLECRAWL_LOG_FILE"),
		},
		Output: Output{
			Dir:     envOr("STYLECRAWL_OUTPUT_DIR", "data/raw"),
			CSVName: envOr("STYLECRAWL_CSV_NAME", "car_data.csv"),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envFloatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
