package model

import (
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

// OHLCV represents a single daily candlestick bar.
type OHLCV struct {
	Time     time.Time
	Open     float64
	High     float64
	Low      float64
	Close    float64
	AdjClose float64
	Volume   float64
}

// PriceTable is a dates x symbols grid of adjusted close prices.
// A date survives only when every symbol has a value for it (conservative
// alignment). The table is built once by the data fetch and never mutated
// afterwards; accessors hand out internal slices that callers must not write.
type PriceTable struct {
	dates   []time.Time
	symbols []string
	columns map[string][]float64
}

// NewPriceTable aligns per-symbol daily bars into a price table, dropping
// any date for which at least one symbol is missing an adjusted close.
func NewPriceTable(symbols []string, history map[string][]OHLCV) *PriceTable {
	perSymbol := make(map[string]map[string]float64, len(symbols))
	seen := make(map[string]time.Time)
	for _, sym := range symbols {
		col := make(map[string]float64, len(history[sym]))
		for _, b := range history[sym] {
			key := b.Time.Format(dateLayout)
			col[key] = b.AdjClose
			seen[key] = b.Time
		}
		perSymbol[sym] = col
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		complete := true
		for _, sym := range symbols {
			if _, ok := perSymbol[sym][key]; !ok {
				complete = false
				break
			}
		}
		if complete {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	t := &PriceTable{
		dates:   make([]time.Time, len(keys)),
		symbols: append([]string(nil), symbols...),
		columns: make(map[string][]float64, len(symbols)),
	}
	for i, key := range keys {
		t.dates[i] = seen[key]
	}
	for _, sym := range symbols {
		col := make([]float64, len(keys))
		for i, key := range keys {
			col[i] = perSymbol[sym][key]
		}
		t.columns[sym] = col
	}
	return t
}

// Len returns the number of aligned trading days.
func (t *PriceTable) Len() int { return len(t.dates) }

// Dates returns the aligned dates in chronological order.
func (t *PriceTable) Dates() []time.Time { return t.dates }

// Symbols returns the symbols the table was built with.
func (t *PriceTable) Symbols() []string { return t.symbols }

// HasSymbol reports whether the table holds a column for the symbol.
func (t *PriceTable) HasSymbol(symbol string) bool {
	_, ok := t.columns[symbol]
	return ok
}

// Column returns the adjusted close series for a symbol.
func (t *PriceTable) Column(symbol string) ([]float64, bool) {
	col, ok := t.columns[symbol]
	return col, ok
}

// Returns derives the daily percentage-change table, one row shorter.
func (t *PriceTable) Returns() *ReturnsTable {
	r := &ReturnsTable{
		symbols: t.symbols,
		columns: make(map[string][]float64, len(t.columns)),
	}
	if t.Len() > 1 {
		r.dates = t.dates[1:]
	}
	for sym, prices := range t.columns {
		col := make([]float64, 0, len(prices))
		for i := 1; i < len(prices); i++ {
			if prices[i-1] != 0 {
				col = append(col, (prices[i]-prices[i-1])/prices[i-1])
			} else {
				col = append(col, 0)
			}
		}
		r.columns[sym] = col
	}
	return r
}

// ReturnsTable holds daily percentage returns derived from a PriceTable.
type ReturnsTable struct {
	dates   []time.Time
	symbols []string
	columns map[string][]float64
}

// Len returns the number of return observations.
func (t *ReturnsTable) Len() int { return len(t.dates) }

// Dates returns the dates of the return observations.
func (t *ReturnsTable) Dates() []time.Time { return t.dates }

// Symbols returns the symbols the table was built with.
func (t *ReturnsTable) Symbols() []string { return t.symbols }

// HasSymbol reports whether the table holds a column for the symbol.
func (t *ReturnsTable) HasSymbol(symbol string) bool {
	_, ok := t.columns[symbol]
	return ok
}

// Column returns the daily return series for a symbol.
func (t *ReturnsTable) Column(symbol string) ([]float64, bool) {
	col, ok := t.columns[symbol]
	return col, ok
}
