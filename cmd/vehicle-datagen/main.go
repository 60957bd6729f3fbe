package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"

	"github.com/SmartGateSim/SmartGateSim/internal/common/config"
	"github.com/SmartGateSim/SmartGateSim/internal/common/logger"
	"github.com/SmartGateSim/SmartGateSim/internal/export"
	"github.com/SmartGateSim/SmartGateSim/internal/generator"
)

var (
	configPath = flag.String("config", "configs/vehicle-datagen.json", "配置文件路径")
)

func main() {
	flag.Parse()

	// 加载配置
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	// 初始化日志
	log, err := logger.NewLogger(cfg.Log.Driver, cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.Path)
	if err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}
	log = log.WithField("run_id", uuid.New().String())

	// 输出文件名的时间戳在运行开始时捕获一次
	startedAt := time.Now()
	filename := export.Filename(cfg.Output.FilePrefix, cfg.Output.Format, startedAt)

	gen := generator.New(cfg.Generator)
	bar := progressbar.Default(int64(cfg.Generator.RecordCount), "generating records")
	records, err := gen.Generate(func(done, total int) {
		_ = bar.Add(1)
	})
	if err != nil {
		log.Fatalf("failed to generate records: %v", err)
	}
	_ = bar.Finish()

	exporter, err := export.New(cfg.Output)
	if err != nil {
		log.Fatalf("failed to init exporter: %v", err)
	}
	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		log.Fatalf("failed to create output dir: %v", err)
	}

	outPath := filepath.Join(cfg.Output.Dir, filename)
	if err := exporter.Export(outPath, records); err != nil {
		log.Fatalf("failed to export records: %v", err)
	}

	log.WithFields(map[string]interface{}{
		"records": len(records),
		"file":    outPath,
		"elapsed": time.Since(startedAt).String(),
	}).Info("dataset export complete")

	fmt.Printf("Generated %s records in '%s'\n", humanize.Comma(int64(len(records))), outPath)
}
