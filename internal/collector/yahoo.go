package collector

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/tidwall/gjson"

	"github.com/tradehunter/market-analyzer/internal/model"
)

// YahooFetcher implements Fetcher using the Yahoo Finance chart API.
type YahooFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewYahooFetcher creates a new Yahoo Finance fetcher with optional proxy support.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		BaseURL: "https://query1.finance.yahoo.com",
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

func (f *YahooFetcher) FetchDailyHistory(symbol string, start, end time.Time) ([]model.OHLCV, error) {
	return f.fetchChart(symbol, start, end)
}

func (f *YahooFetcher) FetchDailyBars(symbol string, days int) ([]model.OHLCV, error) {
	end := time.Now()
	// Pad the calendar window so weekends and holidays still leave enough
	// trading days, then trim to the requested count.
	start := end.AddDate(0, 0, -(days*7/5 + 10))
	bars, err := f.fetchChart(symbol, start, end)
	if err != nil {
		return nil, err
	}
	if len(bars) > days {
		bars = bars[len(bars)-days:]
	}
	return bars, nil
}

func (f *YahooFetcher) fetchChart(symbol string, start, end time.Time) ([]model.OHLCV, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&period1=%d&period2=%d&includeAdjustedClose=true",
		f.BaseURL, url.PathEscape(symbol), start.Unix(), end.Unix())

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch %s: %w", symbol, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}
	return parseChart(body, symbol)
}

// parseChart extracts daily bars from a Yahoo v8 chart payload.
func parseChart(body []byte, symbol string) ([]model.OHLCV, error) {
	if desc := gjson.GetBytes(body, "chart.error.description"); desc.Exists() && desc.String() != "" {
		return nil, fmt.Errorf("yahoo api error for %s: %s", symbol, desc.String())
	}
	result := gjson.GetBytes(body, "chart.result.0")
	if !result.Exists() {
		return nil, fmt.Errorf("yahoo: no data returned for %s", symbol)
	}

	timestamps := result.Get("timestamp").Array()
	if len(timestamps) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned for %s", symbol)
	}
	quote := result.Get("indicators.quote.0")
	opens := quote.Get("open").Array()
	highs := quote.Get("high").Array()
	lows := quote.Get("low").Array()
	closes := quote.Get("close").Array()
	volumes := quote.Get("volume").Array()
	adjusted := result.Get("indicators.adjclose.0.adjclose").Array()

	at := func(arr []gjson.Result, i int) float64 {
		if i >= len(arr) || arr[i].Type == gjson.Null {
			return 0
		}
		return arr[i].Float()
	}

	bars := make([]model.OHLCV, 0, len(timestamps))
	for i, ts := range timestamps {
		o := at(opens, i)
		h := at(highs, i)
		l := at(lows, i)
		c := at(closes, i)
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // skip null bars (holidays etc.)
		}
		adj := at(adjusted, i)
		if adj == 0 {
			adj = c
		}
		bars = append(bars, model.OHLCV{
			Time:     time.Unix(ts.Int(), 0).UTC(),
			Open:     o,
			High:     h,
			Low:      l,
			Close:    c,
			AdjClose: adj,
			Volume:   at(volumes, i),
		})
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("yahoo: no usable bars for %s", symbol)
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}
