package collector

import (
	"time"

	"github.com/tradehunter/market-analyzer/internal/model"
)

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchDailyHistory returns daily bars covering [start, end].
	FetchDailyHistory(symbol string, start, end time.Time) ([]model.OHLCV, error)
	// FetchDailyBars returns the trailing count of daily bars ending now.
	FetchDailyBars(symbol string, days int) ([]model.OHLCV, error)
	Name() string
}
