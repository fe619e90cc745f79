package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	if err := c.Validate(); err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}
	// 3 brands x 1 model each x 2 years.
	if got := c.TargetCount(); got != 6 {
		t.Errorf("TargetCount = %d, want 6", got)
	}
}

func TestLoadCatalog_JSON5(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json5")
	src := `{
		// hand-maintained crawl catalog
		brands: [
			{brand: "bmw", models: ["3-series", "5-series"]},
			{brand: "audi", models: ["a4"]},
		],
		years: [2015, 2016],
	}`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(c.Brands) != 2 || c.Brands[0].Brand != "bmw" || c.Brands[1].Brand != "audi" {
		t.Errorf("brands parsed wrong: %+v", c.Brands)
	}
	if len(c.Brands[0].Models) != 2 {
		t.Errorf("bmw models = %q", c.Brands[0].Models)
	}
	if c.TargetCount() != 6 {
		t.Errorf("TargetCount = %d, want 6", c.TargetCount())
	}
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.json5")); err == nil {
		t.Error("expected error for missing catalog file")
	}
}

func TestCatalogValidate(t *testing.T) {
	cases := []struct {
		name    string
		catalog Catalog
		wantErr bool
	}{
		{"ok", Catalog{Brands: []BrandModels{{Brand: "bmw", Models: []string{"3-series"}}}, Years: []int{2016}}, false},
		{"no brands", Catalog{Years: []int{2016}}, true},
		{"no years", Catalog{Brands: []BrandModels{{Brand: "bmw", Models: []string{"3-series"}}}}, true},
		{"empty brand slug", Catalog{Brands: []BrandModels{{Brand: "", Models: []string{"3-series"}}}, Years: []int{2016}}, true},
		{"brand without models", Catalog{Brands: []BrandModels{{Brand: "bmw"}}, Years: []int{2016}}, true},
		{"empty model slug", Catalog{Brands: []BrandModels{{Brand: "bmw", Models: []string{""}}}, Years: []int{2016}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.catalog.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected a validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg := Load()
	if !cfg.Browser.Headless {
		t.Error("browser must default to headless")
	}
	if cfg.Crawler.RegionWait.Seconds() != 15 {
		t.Errorf("RegionWait = %s, want 15s", cfg.Crawler.RegionWait)
	}
	if cfg.Crawler.TabWait.Seconds() != 15 {
		t.Errorf("TabWait = %s, want 15s", cfg.Crawler.TabWait)
	}
	if cfg.Output.Dir != "data/raw" || cfg.Output.CSVName != "car_data.csv" {
		t.Errorf("output defaults wrong: %+v", cfg.Output)
	}
}
