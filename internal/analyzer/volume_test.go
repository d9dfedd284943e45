package analyzer

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradehunter/market-analyzer/internal/collector"
	"github.com/tradehunter/market-analyzer/internal/model"
	"github.com/tradehunter/market-analyzer/internal/stats"
)

// flakyFetcher fails FetchDailyBars for the configured symbols and serves
// fixed bars for the rest.
type flakyFetcher struct {
	bars map[string][]model.OHLCV
	fail map[string]bool
}

func (f *flakyFetcher) Name() string { return "flaky" }

func (f *flakyFetcher) FetchDailyHistory(symbol string, start, end time.Time) ([]model.OHLCV, error) {
	return f.FetchDailyBars(symbol, 0)
}

func (f *flakyFetcher) FetchDailyBars(symbol string, days int) ([]model.OHLCV, error) {
	if f.fail[symbol] {
		return nil, errors.New("upstream unavailable")
	}
	return f.bars[symbol], nil
}

func volumeBars(closes, volumes []float64) []model.OHLCV {
	bars := make([]model.OHLCV, len(closes))
	for i := range closes {
		bars[i] = model.OHLCV{
			Time:     day(i),
			Open:     closes[i],
			High:     closes[i],
			Low:      closes[i],
			Close:    closes[i],
			AdjClose: closes[i],
			Volume:   volumes[i],
		}
	}
	return bars
}

func TestVolumePatterns_Metrics(t *testing.T) {
	closes := []float64{10, 11, 11, 10, 12}
	volumes := []float64{100, 200, 300, 400, 500}
	fetcher := &collector.MockFetcher{Bars: map[string][]model.OHLCV{
		"AAA": volumeBars(closes, volumes),
	}}

	a := New(fetcher, []string{"AAA"}, "SPY", len(closes), Options{}, zerolog.Nop())
	got := a.VolumePatterns()
	require.Contains(t, got, "AAA")
	rec := got["AAA"]

	assert.InDelta(t, 300.0, rec["avg_volume"], 1e-9)
	// Sample std of {100..500} is sqrt(25000).
	assert.InDelta(t, 158.11388300841898/300.0, rec["volume_volatility"], 1e-9)

	// OBV adds volume on up closes, subtracts on down closes and holds on
	// flat ones, seeded with the first day's volume.
	obv := []float64{100, 300, 300, -100, 400}
	assert.InDelta(t, stats.TrendStrength(obv, obvTrendWindow), rec["obv_trend_strength"], 1e-9)

	// Five bars never fill the 20-day z-score window.
	assert.Zero(t, rec["volume_surge_frequency"])
}

func TestVolumePatterns_SurgeFrequency(t *testing.T) {
	// Flat volume long enough to fill the window, then one large spike.
	volumes := make([]float64, 40)
	closes := make([]float64, 40)
	for i := range volumes {
		volumes[i] = 1000 + float64(i%5)
		closes[i] = 50 + float64(i)*0.1
	}
	volumes[35] = 25000

	fetcher := &collector.MockFetcher{Bars: map[string][]model.OHLCV{
		"AAA": volumeBars(closes, volumes),
	}}
	a := New(fetcher, []string{"AAA"}, "SPY", len(closes), Options{}, zerolog.Nop())

	got := a.VolumePatterns()
	require.Contains(t, got, "AAA")
	assert.InDelta(t, 1.0/40.0, got["AAA"]["volume_surge_frequency"], 1e-9)
}

func TestVolumePatterns_PartialFailure(t *testing.T) {
	closes := []float64{10, 11, 12, 11, 13}
	volumes := []float64{100, 150, 120, 90, 200}
	fetcher := &flakyFetcher{
		bars: map[string][]model.OHLCV{"GOOD": volumeBars(closes, volumes)},
		fail: map[string]bool{"BAD": true},
	}

	a := New(fetcher, []string{"GOOD", "BAD"}, "SPY", len(closes), Options{}, zerolog.Nop())
	got := a.VolumePatterns()

	assert.Contains(t, got, "GOOD")
	assert.NotContains(t, got, "BAD")
}

func TestVolumePatterns_NoFetcher(t *testing.T) {
	a := newTestAnalyzer([]string{"AAA"}, "SPY", map[string][]float64{
		"AAA": {0.01, -0.01},
		"SPY": {0.01, -0.01},
	}, Options{})

	assert.Empty(t, a.VolumePatterns())
}
