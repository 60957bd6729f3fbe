package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/SmartGateSim/SmartGateSim/internal/generator"
)

// CSVExporter 把记录集写为csv文件
type CSVExporter struct{}

func (e *CSVExporter) Export(path string, records []generator.VehicleRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	w := csv.NewWriter(file)
	if err := w.Write(Columns); err != nil {
		file.Close()
		return fmt.Errorf("failed to write header row: %w", err)
	}
	for i, rec := range records {
		if err := w.Write(Row(rec)); err != nil {
			file.Close()
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		file.Close()
		return fmt.Errorf("failed to flush output file: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}
