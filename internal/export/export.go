package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/SmartGateSim/SmartGateSim/internal/common/config"
	"github.com/SmartGateSim/SmartGateSim/internal/generator"
)

// Columns 输出列，顺序固定
var Columns = []string{
	"Plate Number",
	"Make/Model",
	"Color",
	"Department/Company",
	"Year",
	"Type",
	"Status",
	"Current Driver",
	"Assigned Drivers",
	"Access Status",
}

// Exporter 表格写出器：按Columns顺序把记录集整体写入一个文件
type Exporter interface {
	Export(path string, records []generator.VehicleRecord) error
}

// New 按输出格式创建Exporter
func New(cfg config.OutputConfig) (Exporter, error) {
	switch cfg.Format {
	case "xlsx":
		return &XLSXExporter{SheetName: cfg.SheetName}, nil
	case "csv":
		return &CSVExporter{}, nil
	default:
		return nil, fmt.Errorf("export: unsupported format %q", cfg.Format)
	}
}

// Filename 生成带时间戳的输出文件名，时间戳在运行开始时捕获一次
func Filename(prefix, format string, ts time.Time) string {
	return fmt.Sprintf("%s_%s.%s", prefix, ts.Format("20060102_150405"), format)
}

// Values 按Columns顺序展平一条记录，Year保持为数值
func Values(rec generator.VehicleRecord) []interface{} {
	return []interface{}{
		rec.PlateNumber,
		rec.MakeModel,
		rec.Color,
		rec.Department,
		rec.Year,
		rec.VehicleType,
		rec.Status,
		rec.CurrentDriver,
		strings.Join(rec.AssignedDrivers, ","),
		rec.AccessStatus,
	}
}

// Row 按Columns顺序展平一条记录为字符串行
func Row(rec generator.VehicleRecord) []string {
	values := Values(rec)
	row := make([]string, len(values))
	for i, v := range values {
		row[i] = fmt.Sprint(v)
	}
	return row
}
