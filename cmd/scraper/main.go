// The scraper binary runs the full batch pipeline: load the query list,
// fetch every board, normalize and dedupe, write the merged CSV, and
// optionally push a Telegram summary.
package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"go-jobinsights/internal/browser"
	"go-jobinsights/internal/config"
	"go-jobinsights/internal/notify"
	"go-jobinsights/internal/output"
	"go-jobinsights/internal/pipeline"
	"go-jobinsights/internal/scraper"
	"go-jobinsights/internal/scraper/careerone"
	"go-jobinsights/internal/scraper/indeed"
	"go-jobinsights/internal/scraper/jora"
	"go-jobinsights/internal/scraper/prosple"
	"go-jobinsights/internal/scraper/seek"
	"go-jobinsights/internal/scraper/workforceau"
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
	queries, err := config.LoadQueries(cfg.QueriesPath)
	if err != nil {
		sugar.Fatalf("load queries: %v", err)
	}
	sugar.Infof("loaded %d queries from %s", len(queries), cfg.QueriesPath)

	notifier, err := notify.New(cfg.TelegramToken, cfg.TelegramChatID)
	if err != nil {
		sugar.Fatalf("init notifier: %v", err)
	}

	driver, err := browser.NewDriver(cfg.Headless, sugar)
	if err != nil {
		sugar.Fatalf("start browser driver: %v", err)
	}
	defer driver.Stop()

	deps := scraper.Deps{
		Browser:     driver,
		Log:         sugar,
		CookiesPath: cfg.CookiesPath,
		DebugDir:    cfg.DebugDir,
	}
	registry := scraper.NewRegistry(
		seek.New(deps),
		jora.New(deps),
		indeed.New(deps),
		careerone.New(deps),
		workforceau.New(deps),
		prosple.New(deps),
	)

	runner := pipeline.New(registry, sugar)
	res := runner.Run(context.Background(), queries)

	if err := output.WriteJobs(cfg.OutputPath, res.Rows); err != nil {
		if nerr := notifier.Error(err); nerr != nil {
			sugar.Warnw("telegram error report failed", "error", nerr)
		}
		sugar.Fatalf("write dataset: %v", err)
	}
	sugar.Infof("saved %d unique jobs to %s (%d duplicates removed)", res.Unique, cfg.OutputPath, res.Duplicates)

	if err := notifier.RunSummary(res); err != nil {
		sugar.Warnw("telegram summary failed", "error", err)
	}
}
