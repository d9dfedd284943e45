package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Symbols      []string `yaml:"symbols" envconfig:"SYMBOLS"`
	Benchmark    string   `yaml:"benchmark" envconfig:"BENCHMARK"`
	LookbackDays int      `yaml:"lookback_days" envconfig:"LOOKBACK_DAYS"`

	DataSource struct {
		Provider string `yaml:"provider" envconfig:"DATA_PROVIDER"` // "yahoo" or "financego"
		Proxy    string `yaml:"proxy" envconfig:"HTTPS_PROXY"`
	} `yaml:"data_source"`

	Analysis struct {
		// ClusteringFallbackP substitutes for the Ljung-Box p-value when the
		// test cannot run. It decides the clustering flag (flagged when
		// p > 0.05), so it is configuration rather than a buried constant.
		ClusteringFallbackP float64 `yaml:"clustering_fallback_p" envconfig:"CLUSTERING_FALLBACK_P"`
		LjungBoxLags        int     `yaml:"ljung_box_lags" envconfig:"LJUNG_BOX_LAGS"`
	} `yaml:"analysis"`

	Report struct {
		OutputDir string `yaml:"output_dir" envconfig:"REPORT_DIR"`
		Filename  string `yaml:"filename" envconfig:"REPORT_FILENAME"` // empty = timestamped default
	} `yaml:"report"`

	Telegram struct {
		BotToken string `yaml:"bot_token" envconfig:"TELEGRAM_BOT_TOKEN"`
		ChatID   string `yaml:"chat_id" envconfig:"TELEGRAM_CHAT_ID"`
	} `yaml:"telegram"`

	Schedule struct {
		Cron string `yaml:"cron" envconfig:"ANALYSIS_CRON"` // empty = single run
	} `yaml:"schedule"`

	Log struct {
		Level  string `yaml:"level" envconfig:"LOG_LEVEL"`
		Pretty bool   `yaml:"pretty" envconfig:"LOG_PRETTY"`
	} `yaml:"log"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides (a .env file is honored when present) and defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("env overrides: %w", err)
	}

	// Defaults
	if cfg.Benchmark == "" {
		cfg.Benchmark = "SPY"
	}
	if cfg.LookbackDays == 0 {
		cfg.LookbackDays = 252
	}
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = "yahoo"
	}
	if cfg.Analysis.ClusteringFallbackP == 0 {
		cfg.Analysis.ClusteringFallbackP = 0.5
	}
	if cfg.Analysis.LjungBoxLags == 0 {
		cfg.Analysis.LjungBoxLags = 10
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// Validate checks that all required fields are set and consistent.
func (c *Config) Validate() error {
	if len(c.Symbols) == 0 {
		return fmt.Errorf("symbols is required")
	}
	if c.LookbackDays <= 0 {
		return fmt.Errorf("lookback_days must be positive")
	}
	switch c.DataSource.Provider {
	case "yahoo", "financego", "mock":
	default:
		return fmt.Errorf("data_source.provider must be yahoo, financego or mock, got %q", c.DataSource.Provider)
	}
	if c.Analysis.ClusteringFallbackP < 0 || c.Analysis.ClusteringFallbackP > 1 {
		return fmt.Errorf("analysis.clustering_fallback_p must be within [0, 1]")
	}
	if c.Analysis.LjungBoxLags <= 0 {
		return fmt.Errorf("analysis.ljung_box_lags must be positive")
	}
	return nil
}
