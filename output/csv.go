// Package output persists result tables. It is invoked once after the full
// crawl completes; the skip-when-empty decision belongs to the caller so an
// empty run produces a diagnostic instead of an empty file.
package output

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/openroad-data/stylecrawl/models"
)

// WriteCSV writes the table to path with the fixed column header, creating
// parent directories as needed.
func WriteCSV(path string, table models.ResultTable) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return models.NewCrawlError(models.ErrCodePersist, "creating output directory failed", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return models.NewCrawlError(models.ErrCodePersist, "creating output file failed", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(models.Columns); err != nil {
		return models.NewCrawlError(models.ErrCodePersist, "writing CSV header failed", err)
	}
	for _, rec := range table {
		if err := w.Write(rec.Row()); err != nil {
			return models.NewCrawlError(models.ErrCodePersist, "writing CSV row failed", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return models.NewCrawlError(models.ErrCodePersist, "flushing CSV failed", err)
	}
	return nil
}
