package collector

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradehunter/market-analyzer/internal/model"
)

// fetchBufferDays pads the lookback window so the aligned table still holds
// enough trading days after weekends, holidays and dropped rows.
const fetchBufferDays = 50

// Collector assembles the aligned multi-symbol price table.
type Collector struct {
	Fetcher      Fetcher
	Symbols      []string
	Benchmark    string
	LookbackDays int

	log zerolog.Logger
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, symbols []string, benchmark string, lookbackDays int, log zerolog.Logger) *Collector {
	return &Collector{
		Fetcher:      fetcher,
		Symbols:      symbols,
		Benchmark:    benchmark,
		LookbackDays: lookbackDays,
		log:          log.With().Str("component", "collector").Logger(),
	}
}

// AllSymbols returns the configured symbols with the benchmark appended
// when it is not already among them.
func (c *Collector) AllSymbols() []string {
	for _, s := range c.Symbols {
		if s == c.Benchmark {
			return append([]string(nil), c.Symbols...)
		}
	}
	return append(append([]string(nil), c.Symbols...), c.Benchmark)
}

// BuildPriceTable fetches adjusted-close history for every symbol plus the
// benchmark over a padded lookback window and aligns the series by date.
// Any single fetch failure aborts the build; there is no partial table.
func (c *Collector) BuildPriceTable() (*model.PriceTable, error) {
	all := c.AllSymbols()
	end := time.Now()
	start := end.AddDate(0, 0, -(c.LookbackDays + fetchBufferDays))

	c.log.Info().Int("symbols", len(all)).Str("source", c.Fetcher.Name()).Msg("fetching price history")

	history := make(map[string][]model.OHLCV, len(all))
	for _, sym := range all {
		bars, err := c.Fetcher.FetchDailyHistory(sym, start, end)
		if err != nil {
			return nil, fmt.Errorf("fetch history %s: %w", sym, err)
		}
		history[sym] = bars
	}

	table := model.NewPriceTable(all, history)
	if table.Len() == 0 {
		return nil, fmt.Errorf("no overlapping trading days across %d symbols", len(all))
	}
	c.log.Info().Int("days", table.Len()).Msg("price table built")
	return table, nil
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	BasePrice float64
	Bars      map[string][]model.OHLCV // per-symbol override
	Err       error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyHistory(symbol string, start, end time.Time) ([]model.OHLCV, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if bars, ok := m.Bars[symbol]; ok {
		return bars, nil
	}
	days := int(end.Sub(start).Hours() / 24)
	return GenerateBars(m.BasePrice, days), nil
}

func (m *MockFetcher) FetchDailyBars(symbol string, days int) ([]model.OHLCV, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if bars, ok := m.Bars[symbol]; ok {
		if len(bars) > days {
			bars = bars[len(bars)-days:]
		}
		return bars, nil
	}
	return GenerateBars(m.BasePrice, days), nil
}

// GenerateBars produces a deterministic drifting series of daily bars.
func GenerateBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:     time.Now().AddDate(0, 0, -(count - i)),
			Open:     p * 0.999,
			High:     p * 1.005,
			Low:      p * 0.995,
			Close:    p,
			AdjClose: p,
			Volume:   1000000,
		}
	}
	return bars
}
