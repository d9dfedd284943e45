package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "SPY", cfg.Benchmark)
	assert.Equal(t, 252, cfg.LookbackDays)
	assert.Equal(t, "yahoo", cfg.DataSource.Provider)
	assert.Equal(t, 0.5, cfg.Analysis.ClusteringFallbackP)
	assert.Equal(t, 10, cfg.Analysis.LjungBoxLags)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Schedule.Cron)
}

func TestLoad_YAMLValues(t *testing.T) {
	path := writeConfig(t, `
symbols: [AAPL, MSFT]
benchmark: QQQ
lookback_days: 120
data_source:
  provider: mock
analysis:
  clustering_fallback_p: 0.9
  ljung_box_lags: 5
report:
  output_dir: reports
log:
  level: debug
  pretty: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"AAPL", "MSFT"}, cfg.Symbols)
	assert.Equal(t, "QQQ", cfg.Benchmark)
	assert.Equal(t, 120, cfg.LookbackDays)
	assert.Equal(t, "mock", cfg.DataSource.Provider)
	assert.Equal(t, 0.9, cfg.Analysis.ClusteringFallbackP)
	assert.Equal(t, 5, cfg.Analysis.LjungBoxLags)
	assert.Equal(t, "reports", cfg.Report.OutputDir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeConfig(t, `
symbols: [AAPL]
benchmark: QQQ
`)
	t.Setenv("BENCHMARK", "IWM")
	t.Setenv("LOOKBACK_DAYS", "63")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "IWM", cfg.Benchmark)
	assert.Equal(t, 63, cfg.LookbackDays)
	assert.Equal(t, []string{"AAPL"}, cfg.Symbols)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "symbols: [unterminated")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := &Config{Symbols: []string{"AAPL"}, LookbackDays: 252}
		cfg.DataSource.Provider = "yahoo"
		cfg.Analysis.ClusteringFallbackP = 0.5
		cfg.Analysis.LjungBoxLags = 10
		return cfg
	}

	assert.NoError(t, base().Validate())

	cfg := base()
	cfg.Symbols = nil
	assert.ErrorContains(t, cfg.Validate(), "symbols is required")

	cfg = base()
	cfg.LookbackDays = -1
	assert.ErrorContains(t, cfg.Validate(), "lookback_days")

	cfg = base()
	cfg.DataSource.Provider = "bloomberg"
	assert.ErrorContains(t, cfg.Validate(), "data_source.provider")

	cfg = base()
	cfg.Analysis.ClusteringFallbackP = 1.5
	assert.ErrorContains(t, cfg.Validate(), "clustering_fallback_p")

	cfg = base()
	cfg.Analysis.LjungBoxLags = 0
	assert.ErrorContains(t, cfg.Validate(), "ljung_box_lags")
}
