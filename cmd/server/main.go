// The server binary serves dashboard aggregates over the merged dataset as a
// JSON API. The dataset is loaded once at startup; rerun the scraper and
// restart to refresh.
package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-jobinsights/internal/config"
	"go-jobinsights/internal/dashboard"
	"go-jobinsights/internal/dataset"
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
	sugar.Infof("serving %d jobs from %s", len(rows), cfg.OutputPath)

	gin.SetMode(gin.ReleaseMode)
	router := dashboard.NewRouter(dashboard.NewStore(rows), cfg.OutputPath, sugar)

	sugar.Infof("dashboard API listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		sugar.Fatalf("server stopped: %v", err)
	}
}
