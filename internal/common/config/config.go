package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Config 数据生成工具的运行配置
type Config struct {
	Generator GeneratorConfig `json:"generator"`
	Output    OutputConfig    `json:"output"`
	Log       LogConfig       `json:"log"`
}

// GeneratorConfig 记录生成配置
type GeneratorConfig struct {
	RecordCount   int     `json:"record_count"`    // 生成记录数
	Seed          int64   `json:"seed"`            // 随机种子，0表示按时间播种
	NoDriverRate  float64 `json:"no_driver_rate"`  // 当前司机为空的概率
	LongPlateRate float64 `json:"long_plate_rate"` // 三字母车牌格式的概率
}

// OutputConfig 导出配置
type OutputConfig struct {
	Dir        string `json:"dir"`         // 输出目录
	Format     string `json:"format"`      // xlsx, csv
	FilePrefix string `json:"file_prefix"` // 文件名前缀
	SheetName  string `json:"sheet_name"`  // 工作表名称（仅xlsx）
}

// LogConfig 日志配置
type LogConfig struct {
	Driver string `json:"driver"` // logrus, zap
	Level  string `json:"level"`  // debug, info, warn, error
	Format string `json:"format"` // json, text
	Output string `json:"output"` // stdout, file
	Path   string `json:"path"`   // 日志文件路径
}

var (
	globalConfig *Config
	configOnce   sync.Once
)

// LoadConfig 加载配置
func LoadConfig(configPath string) (*Config, error) {
	var err error
	configOnce.Do(func() {
		globalConfig, err = load(configPath)
	})

	if err != nil {
		return nil, err
	}

	return globalConfig, nil
}

func load(configPath string) (*Config, error) {
	// 如果配置文件不存在，使用默认配置
	cfg := defaultConfig()
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		logrus.Warnf("Config file not found: %s, using default config", configPath)
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// GetConfig 获取全局配置
func GetConfig() *Config {
	if globalConfig == nil {
		return defaultConfig()
	}
	return globalConfig
}

// Validate 校验配置参数
func (c *Config) Validate() error {
	if c.Generator.RecordCount < 1 {
		return fmt.Errorf("generator.record_count must be at least 1, got %d", c.Generator.RecordCount)
	}
	if c.Generator.NoDriverRate < 0 || c.Generator.NoDriverRate > 1 {
		return fmt.Errorf("generator.no_driver_rate must be within [0, 1], got %v", c.Generator.NoDriverRate)
	}
	if c.Generator.LongPlateRate < 0 || c.Generator.LongPlateRate > 1 {
		return fmt.Errorf("generator.long_plate_rate must be within [0, 1], got %v", c.Generator.LongPlateRate)
	}
	switch c.Output.Format {
	case "xlsx", "csv":
	default:
		return fmt.Errorf("output.format must be xlsx or csv, got %q", c.Output.Format)
	}
	if c.Output.FilePrefix == "" {
		return fmt.Errorf("output.file_prefix must not be empty")
	}
	return nil
}

// defaultConfig 默认配置
func defaultConfig() *Config {
	return &Config{
		Generator: GeneratorConfig{
			RecordCount:   10000,
			Seed:          0,
			NoDriverRate:  0.1,
			LongPlateRate: 0.5,
		},
		Output: OutputConfig{
			Dir:        ".",
			Format:     "xlsx",
			FilePrefix: "vehicle_records",
			SheetName:  "Vehicle Records",
		},
		Log: LogConfig{
			Driver: "logrus",
			Level:  "info",
			Format: "text",
			Output: "stdout",
			Path:   "logs/vehicle-datagen.log",
		},
	}
}
