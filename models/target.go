package models

import (
	"fmt"
	"strings"
)

// BaseURL is the root of the source site. Model pages live at
// <BaseURL>/<brand>/<model>/<year>/.
const BaseURL = "https://www.kbb.com"

// CrawlTarget is one (brand, model, year) combination from the catalog.
// Constructed transiently per catalog iteration.
type CrawlTarget struct {
	Brand string // URL slug, e.g. "mercedes-benz"
	Model string // URL slug, e.g. "c-class"
	Year  int
}

// URL builds the canonical model-page URL for the target.
func (t CrawlTarget) URL() string {
	return fmt.Sprintf("%s/%s/%s/%d/", BaseURL, t.Brand, t.Model, t.Year)
}

func (t CrawlTarget) String() string {
	return fmt.Sprintf("%s/%s/%d", t.Brand, t.Model, t.Year)
}

// Capitalize upper-cases the first letter of a slug, leaving the rest as-is
// ("bmw" -> "Bmw", "3-series" -> "3-series"). This matches the tagging format
// of the result table, which records slugs, not display names.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
