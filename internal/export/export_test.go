package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/SmartGateSim/SmartGateSim/internal/common/config"
	"github.com/SmartGateSim/SmartGateSim/internal/generator"
)

func testRecords(t *testing.T, n int) []generator.VehicleRecord {
	t.Helper()
	records, err := generator.New(config.GeneratorConfig{
		RecordCount:   n,
		Seed:          42,
		NoDriverRate:  0.1,
		LongPlateRate: 0.5,
	}).Generate(nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return records
}

func TestFilename(t *testing.T) {
	ts := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
	got := Filename("vehicle_records", "xlsx", ts)
	if got != "vehicle_records_20240102_150405.xlsx" {
		t.Fatalf("unexpected filename: %q", got)
	}
}

func TestRowOrder(t *testing.T) {
	rec := generator.VehicleRecord{
		PlateNumber:     "ABC-123",
		MakeModel:       "Toyota Camry",
		Color:           "White",
		Department:      "Operations",
		Year:            2015,
		VehicleType:     "Car",
		Status:          "IN",
		CurrentDriver:   "DRV001",
		AssignedDrivers: []string{"DRV001", "Casey"},
		AccessStatus:    "Access",
	}
	row := Row(rec)
	want := []string{
		"ABC-123", "Toyota Camry", "White", "Operations", "2015",
		"Car", "IN", "DRV001", "DRV001,Casey", "Access",
	}
	if len(row) != len(Columns) {
		t.Fatalf("expected %d cells, got %d", len(Columns), len(row))
	}
	for i := range want {
		if row[i] != want[i] {
			t.Fatalf("cell %d: expected %q, got %q", i, want[i], row[i])
		}
	}
}

func TestNewExporterUnknownFormat(t *testing.T) {
	if _, err := New(config.OutputConfig{Format: "parquet"}); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestXLSXExportEndToEnd(t *testing.T) {
	records := testRecords(t, 5)
	path := filepath.Join(t.TempDir(), "vehicle_records_test.xlsx")

	exporter := &XLSXExporter{SheetName: "Vehicle Records"}
	if err := exporter.Export(path, records); err != nil {
		t.Fatalf("Export: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Vehicle Records")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 6 {
		t.Fatalf("expected header plus 5 rows, got %d rows", len(rows))
	}
	if len(rows[0]) != len(Columns) {
		t.Fatalf("expected %d columns, got %d", len(Columns), len(rows[0]))
	}
	for i, col := range Columns {
		if rows[0][i] != col {
			t.Fatalf("header %d: expected %q, got %q", i, col, rows[0][i])
		}
	}

	plates := make(map[string]struct{})
	for _, row := range rows[1:] {
		if _, ok := plates[row[0]]; ok {
			t.Fatalf("duplicate plate in export: %q", row[0])
		}
		plates[row[0]] = struct{}{}

		year, err := strconv.Atoi(row[4])
		if err != nil {
			t.Fatalf("year cell not numeric: %q", row[4])
		}
		if year < 2010 || year > 2023 {
			t.Fatalf("year %d out of range", year)
		}

		current := ""
		if len(row) > 7 {
			current = row[7]
		}
		if current != "" {
			assigned := strings.Split(row[8], ",")
			found := false
			for _, d := range assigned {
				if d == current {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("current driver %q not in assigned drivers %q", current, row[8])
			}
		}
	}
}

func TestCSVExport(t *testing.T) {
	records := testRecords(t, 5)
	path := filepath.Join(t.TempDir(), "vehicle_records_test.csv")

	exporter := &CSVExporter{}
	if err := exporter.Export(path, records); err != nil {
		t.Fatalf("Export: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(rows) != 6 {
		t.Fatalf("expected header plus 5 rows, got %d rows", len(rows))
	}
	for i, col := range Columns {
		if rows[0][i] != col {
			t.Fatalf("header %d: expected %q, got %q", i, col, rows[0][i])
		}
	}
	for _, row := range rows[1:] {
		if len(row) != len(Columns) {
			t.Fatalf("expected %d cells, got %d", len(Columns), len(row))
		}
	}
}

func TestXLSXExportBadPath(t *testing.T) {
	records := testRecords(t, 1)
	exporter := &XLSXExporter{}
	if err := exporter.Export(filepath.Join(t.TempDir(), "missing", "out.xlsx"), records); err == nil {
		t.Fatalf("expected error writing into missing directory")
	}
}
