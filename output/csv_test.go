package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/openroad-data/stylecrawl/models"
)

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw", "nested", "car_data.csv")

	table := models.ResultTable{
		{
			Style: "330i", Price: "$38,750", MPG: "26 mpg", Horsepower: "248 hp",
			Engine: "2.0L Turbo I4", CargoRoom: "13.0 cu ft", Torque: "258 lb-ft",
			ZeroToSixty: "5.4s", TopSpeed: "130 mph", CurbWeight: "3560 lbs",
			Brand: "Bmw", Model: "3-series", Year: 2016,
		},
		{
			Style: "xDrive Wagon", Price: "$44,000", MPG: "25 mpg", Horsepower: "240 hp",
			Engine: "2.0L Turbo I4", CargoRoom: models.SentinelNA, Torque: models.SentinelNA,
			ZeroToSixty: "6.0s", TopSpeed: "128 mph", CurbWeight: "3705 lbs",
			Brand: "Bmw", Model: "3-series", Year: 2016,
		},
	}

	if err := WriteCSV(path, table); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open written CSV: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read back CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d CSV rows, want header + 2", len(rows))
	}
	if !reflect.DeepEqual(rows[0], models.Columns) {
		t.Errorf("header = %q, want %q", rows[0], models.Columns)
	}
	if rows[1][0] != "330i" || rows[1][12] != "2016" {
		t.Errorf("first data row wrong: %q", rows[1])
	}
	if rows[2][5] != models.SentinelNA || rows[2][6] != models.SentinelNA {
		t.Errorf("NA sentinels must survive serialization: %q", rows[2])
	}
}

func TestWriteCSV_PersistErrorIsTyped(t *testing.T) {
	dir := t.TempDir()
	// Target path is a directory: Create must fail.
	err := WriteCSV(dir, models.ResultTable{})
	if err == nil {
		t.Fatal("expected a persistence error")
	}
	if models.ErrorCode(err) != models.ErrCodePersist {
		t.Errorf("error code = %s, want %s", models.ErrorCode(err), models.ErrCodePersist)
	}
}
