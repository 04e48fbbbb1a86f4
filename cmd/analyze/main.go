// The analyze binary reads the merged dataset and produces the skills
// reports: a console summary and one CSV per skill category.
package main

import (
	"log"
	"os"

	"go.uber.org/zap"

	"go-jobinsights/internal/config"
	"go-jobinsights/internal/dataset"
	"go-jobinsights/internal/skills"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	cfg, err := config.Load()
	if err != nil {
		sugar.Fatalf("load config: %v", err)
	}

	rows, err := dataset.Load(cfg.OutputPath)
	if err != nil {
		sugar.Fatalf("load dataset: %v", err)
	}
	sugar.Infof("loaded %d jobs from %s", len(rows), cfg.OutputPath)

	extractor := skills.NewExtractor()
	counts := extractor.CountByCategory(rows)

	skills.PrintReport(os.Stdout, rows, counts)

	if err := skills.WriteReports(cfg.DataDir, counts); err != nil {
		sugar.Fatalf("write reports: %v", err)
	}
	sugar.Infof("skill reports written under %s", cfg.DataDir)
}
