package collector

import (
	"fmt"
	"sort"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"

	"github.com/tradehunter/market-analyzer/internal/model"
)

// FinanceGoFetcher implements Fetcher on top of the piquette/finance-go
// client, as an alternative to the raw Yahoo chart API.
type FinanceGoFetcher struct{}

// NewFinanceGoFetcher creates a new finance-go backed fetcher.
func NewFinanceGoFetcher() *FinanceGoFetcher { return &FinanceGoFetcher{} }

func (f *FinanceGoFetcher) Name() string { return "financego" }

func (f *FinanceGoFetcher) FetchDailyHistory(symbol string, start, end time.Time) ([]model.OHLCV, error) {
	params := &chart.Params{
		Symbol:   symbol,
		Interval: datetime.OneDay,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
	}

	iter := chart.Get(params)
	var bars []model.OHLCV
	for iter.Next() {
		b := iter.Bar()
		open, _ := b.Open.Float64()
		high, _ := b.High.Float64()
		low, _ := b.Low.Float64()
		closePx, _ := b.Close.Float64()
		adj, _ := b.AdjClose.Float64()
		if adj == 0 {
			adj = closePx
		}
		bars = append(bars, model.OHLCV{
			Time:     time.Unix(int64(b.Timestamp), 0).UTC(),
			Open:     open,
			High:     high,
			Low:      low,
			Close:    closePx,
			AdjClose: adj,
			Volume:   float64(b.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("financego chart %s: %w", symbol, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("financego: no bars returned for %s", symbol)
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

func (f *FinanceGoFetcher) FetchDailyBars(symbol string, days int) ([]model.OHLCV, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -(days*7/5 + 10))
	bars, err := f.FetchDailyHistory(symbol, start, end)
	if err != nil {
		return nil, err
	}
	if len(bars) > days {
		bars = bars[len(bars)-days:]
	}
	return bars, nil
}
