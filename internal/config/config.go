// Package config resolves runtime settings from the environment (with a
// best-effort .env load) and reads the query list that drives a pipeline run.
// The queries are data, not code: swapping boards, keywords or page budgets
// never touches pipeline logic.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"go-jobinsights/internal/scraper"
)

// Config carries every setting the three binaries read.
type Config struct {
	// Paths
	OutputPath  string // merged dataset CSV
	DataDir     string // skills report CSVs land here
	QueriesPath string // query list YAML
	CookiesPath string // optional cookies JSON for browser sessions
	DebugDir    string // optional zero-card screenshot directory

	// Browser
	Headless bool

	// Server
	Port string

	// Telegram run summary, optional. Both must be set to enable it.
	TelegramToken  string
	TelegramChatID int64
}

// Load reads configuration from the environment. A .env file in the working
// directory is folded in when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		OutputPath:    envOr("JOBS_OUTPUT", "data/jobs_merged.csv"),
		DataDir:       envOr("JOBS_DATA_DIR", "data"),
		QueriesPath:   envOr("JOBS_QUERIES", "configs/queries.yaml"),
		CookiesPath:   os.Getenv("JOBS_COOKIES"),
		DebugDir:      os.Getenv("JOBS_DEBUG_DIR"),
		Port:          envOr("PORT", "8080"),
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		Headless:      true,
	}

	if v := os.Getenv("JOBS_HEADLESS"); v != "" {
		headless, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid JOBS_HEADLESS %q: %w", v, err)
		}
		cfg.Headless = headless
	}

	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID %q: %w", v, err)
		}
		cfg.TelegramChatID = id
	}
	if cfg.TelegramToken != "" && cfg.TelegramChatID == 0 {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is set but TELEGRAM_CHAT_ID is missing")
	}

	return cfg, nil
}

// TelegramEnabled reports whether a run summary should be sent.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

type queriesFile struct {
	Queries []scraper.Query `yaml:"queries"`
}

// LoadQueries reads the YAML query list. Every entry needs at least a source
// and a keyword; page budgets and delays fall back to per-board defaults when
// omitted.
func LoadQueries(path string) ([]scraper.Query, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read queries file: %w", err)
	}

	var file queriesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(file.Queries) == 0 {
		return nil, fmt.Errorf("%s contains no queries", path)
	}

	for i, q := range file.Queries {
		if q.Source == "" {
			return nil, fmt.Errorf("%s: query %d has no source", path, i+1)
		}
		if q.Keyword == "" {
			return nil, fmt.Errorf("%s: query %d (%s) has no keyword", path, i+1, q.Source)
		}
		if q.Pages < 0 {
			return nil, fmt.Errorf("%s: query %d (%s %q) has a negative page budget", path, i+1, q.Source, q.Keyword)
		}
	}
	return file.Queries, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
