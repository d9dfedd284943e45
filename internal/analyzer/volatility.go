package analyzer

import (
	"math"

	"github.com/tradehunter/market-analyzer/internal/model"
	"github.com/tradehunter/market-analyzer/internal/stats"
)

// Rolling windows for the volatility profile, in trading days.
const (
	volShortWindow = 20
	volLongWindow  = 60
)

// VolatilityMetrics computes the per-symbol volatility profile from daily
// returns: annualized and trailing-window volatility, the percentile rank of
// the current daily vol within the historical 60-day rolling distribution,
// downside deviation and a volatility-clustering flag from a Ljung-Box test
// on squared returns.
func (a *Analyzer) VolatilityMetrics() (map[string]model.MetricRecord, error) {
	if err := a.ensureData(); err != nil {
		return nil, err
	}

	metrics := make(map[string]model.MetricRecord)
	for _, sym := range a.symbols {
		rets, ok := a.returns.Column(sym)
		if !ok {
			continue
		}

		dailyVol := stats.StdDev(rets)
		annVol := dailyVol * math.Sqrt(stats.TradingDaysPerYear)

		rolling60 := stats.RollingStd(rets, volLongWindow)
		percentile := stats.PercentileOfScore(stats.DropNaN(rolling60), dailyVol)

		var negatives []float64
		for _, r := range rets {
			if r < 0 {
				negatives = append(negatives, r)
			}
		}
		downside := 0.0
		if len(negatives) > 0 {
			downside = stats.StdDev(negatives) * math.Sqrt(stats.TradingDaysPerYear)
		}
		ratio := math.Inf(1)
		if downside > 0 {
			ratio = annVol / downside
		}

		squared := make([]float64, len(rets))
		for i, r := range rets {
			squared[i] = r * r
		}
		p, err := stats.LjungBoxPValue(squared, a.opts.LjungBoxLags)
		if err != nil {
			a.log.Debug().Str("symbol", sym).Err(err).
				Float64("fallback_p", a.opts.ClusteringFallbackP).
				Msg("clustering test unavailable, using fallback")
			p = a.opts.ClusteringFallbackP
		}
		clustering := 0.0
		if p > 0.05 {
			clustering = 1.0
		}

		metrics[sym] = model.MetricRecord{
			"annualized_volatility": annVol,
			"volatility_20d":        trailingAnnualizedVol(rets, volShortWindow),
			"volatility_60d":        trailingAnnualizedVol(rets, volLongWindow),
			"volatility_percentile": percentile,
			"downside_volatility":   downside,
			"upside_downside_ratio": ratio,
			"volatility_clustering": clustering,
		}
	}
	return metrics, nil
}

// trailingAnnualizedVol is the annualized sample std of the last window
// returns, NaN when the series is shorter than the window.
func trailingAnnualizedVol(rets []float64, window int) float64 {
	if len(rets) < window {
		return math.NaN()
	}
	return stats.StdDev(rets[len(rets)-window:]) * math.Sqrt(stats.TradingDaysPerYear)
}
