package analyzer

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/tradehunter/market-analyzer/internal/model"
)

func day(n int) time.Time {
	return time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func pricesFromReturns(rets []float64) []float64 {
	prices := make([]float64, 0, len(rets)+1)
	p := 100.0
	prices = append(prices, p)
	for _, r := range rets {
		p *= 1 + r
		prices = append(prices, p)
	}
	return prices
}

func barsFromPrices(prices []float64) []model.OHLCV {
	bars := make([]model.OHLCV, len(prices))
	for i, p := range prices {
		bars[i] = model.OHLCV{
			Time:     day(i),
			Open:     p,
			High:     p,
			Low:      p,
			Close:    p,
			AdjClose: p,
			Volume:   1000000,
		}
	}
	return bars
}

// newTestAnalyzer builds an analyzer over a table reconstructed from the
// given per-symbol daily return series (all series share one date axis).
func newTestAnalyzer(symbols []string, benchmark string, returns map[string][]float64, opts Options) *Analyzer {
	history := make(map[string][]model.OHLCV, len(returns))
	var all []string
	for sym, rets := range returns {
		history[sym] = barsFromPrices(pricesFromReturns(rets))
		all = append(all, sym)
	}
	table := model.NewPriceTable(all, history)
	return NewFromTable(table, symbols, benchmark, opts, zerolog.Nop())
}
