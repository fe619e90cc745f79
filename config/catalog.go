package config

import (
	"fmt"
	"os"

	"github.com/titanous/json5"
)

// BrandModels pairs a brand slug with its ordered model slugs. The catalog is
// an array (not a map) so that crawl order is deterministic — Go decoders do
// not preserve object key order.
type BrandModels struct {
	Brand  string   `json:"brand"`
	Models []string `json:"models"`
}

// Catalog is the explicit brand/model/year input to the crawl. It is
// consumed read-only; the orchestrator cross-joins Brands with Years.
type Catalog struct {
	Brands []BrandModels `json:"brands"`
	Years  []int         `json:"years"`
}

// TargetCount is the number of (brand, model, year) combinations the catalog
// expands to.
func (c *Catalog) TargetCount() int {
	n := 0
	for _, b := range c.Brands {
		n += len(b.Models)
	}
	return n * len(c.Years)
}

// Validate rejects catalogs that would generate malformed URLs.
func (c *Catalog) Validate() error {
	if len(c.Brands) == 0 {
		return fmt.Errorf("catalog has no brands")
	}
	if len(c.Years) == 0 {
		return fmt.Errorf("catalog has no years")
	}
	for _, b := range c.Brands {
		if b.Brand == "" {
			return fmt.Errorf("catalog has a brand with an empty slug")
		}
		if len(b.Models) == 0 {
			return fmt.Errorf("brand %q has no models", b.Brand)
		}
		for _, m := range b.Models {
			if m == "" {
				return fmt.Errorf("brand %q has a model with an empty slug", b.Brand)
			}
		}
	}
	return nil
}

// DefaultCatalog returns the built-in reference catalog used when no catalog
// file is given.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Brands: []BrandModels{
			{Brand: "bmw", Models: []string{"3-series"}},
			{Brand: "audi", Models: []string{"a4"}},
			{Brand: "mercedes-benz", Models: []string{"c-class"}},
		},
		Years: []int{2015, 2016},
	}
}

// LoadCatalog reads and validates a catalog from a JSON5 file. JSON5 keeps
// hand-maintained catalogs readable (comments, trailing commas).
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var c Catalog
	if err := json5.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return &c, nil
}
