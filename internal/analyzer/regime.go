package analyzer

import (
	"math"
	"time"

	"github.com/tradehunter/market-analyzer/internal/stats"
)

const (
	regimeWindow          = 60
	regimeMedianThreshold = 1.5
)

// RegimeChanges detects volatility regime shifts per symbol: the 60-day
// rolling std of returns is compared against 1.5x its own median, and every
// date where the resulting high-vol indicator flips value is emitted. A
// two-state proxy for a Markov switching model, not a fitted HMM.
func (a *Analyzer) RegimeChanges() (map[string][]time.Time, error) {
	if err := a.ensureData(); err != nil {
		return nil, err
	}

	changes := make(map[string][]time.Time)
	dates := a.returns.Dates()
	for _, sym := range a.symbols {
		rets, ok := a.returns.Column(sym)
		if !ok {
			continue
		}

		rolling := stats.RollingStd(rets, regimeWindow)
		defined := stats.DropNaN(rolling)
		if len(defined) == 0 {
			changes[sym] = nil
			continue
		}
		threshold := stats.Median(defined) * regimeMedianThreshold

		var flips []time.Time
		previous := false
		for i, v := range rolling {
			// Undefined rolling values count as low-vol, matching the
			// behavior of comparing NaN against the threshold.
			high := !math.IsNaN(v) && v > threshold
			if high != previous {
				flips = append(flips, dates[i])
			}
			previous = high
		}
		changes[sym] = flips
	}
	return changes, nil
}
