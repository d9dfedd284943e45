package analyzer

import (
	"math"

	"github.com/markcheno/go-talib"

	"github.com/tradehunter/market-analyzer/internal/model"
	"github.com/tradehunter/market-analyzer/internal/stats"
)

const (
	volumeZScoreWindow = 20
	volumeSurgeZ       = 2.0
	obvTrendWindow     = 20
)

// VolumePatterns analyzes volume behavior per symbol: dispersion, the
// relationship of volume to price and returns, surge frequency and the
// trend strength of on-balance volume. Each symbol gets its own history
// fetch; a failed fetch drops the symbol from the result rather than
// failing the analysis.
func (a *Analyzer) VolumePatterns() map[string]model.MetricRecord {
	metrics := make(map[string]model.MetricRecord)
	if a.fetcher == nil {
		a.log.Debug().Msg("no fetcher configured, skipping volume patterns")
		return metrics
	}

	for _, sym := range a.symbols {
		bars, err := a.fetcher.FetchDailyBars(sym, a.lookback)
		if err != nil {
			a.log.Warn().Str("symbol", sym).Err(err).Msg("volume fetch failed, skipping symbol")
			continue
		}
		if len(bars) < 2 {
			a.log.Warn().Str("symbol", sym).Int("bars", len(bars)).Msg("not enough volume history, skipping symbol")
			continue
		}

		volume := make([]float64, len(bars))
		closes := make([]float64, len(bars))
		for i, b := range bars {
			volume[i] = b.Volume
			closes[i] = b.Close
		}
		rets := stats.Returns(closes)

		avgVolume := stats.Mean(volume)
		cv := 0.0
		if avgVolume != 0 {
			cv = stats.StdDev(volume) / avgVolume
		}

		metrics[sym] = model.MetricRecord{
			"avg_volume":                avgVolume,
			"volume_volatility":         cv,
			"volume_price_correlation":  stats.Correlation(volume, closes),
			"volume_return_correlation": stats.Correlation(volume[1:], rets),
			"volume_surge_frequency":    surgeFrequency(volume),
			"obv_trend_strength":        stats.TrendStrength(talib.Obv(closes, volume), obvTrendWindow),
		}
	}
	return metrics
}

// surgeFrequency is the fraction of days whose volume sits more than
// volumeSurgeZ standard deviations above its trailing 20-day mean.
func surgeFrequency(volume []float64) float64 {
	if len(volume) == 0 {
		return 0
	}
	mean := stats.RollingMean(volume, volumeZScoreWindow)
	sd := stats.RollingStd(volume, volumeZScoreWindow)
	surges := 0
	for i := range volume {
		if math.IsNaN(mean[i]) || math.IsNaN(sd[i]) || sd[i] == 0 {
			continue
		}
		if (volume[i]-mean[i])/sd[i] > volumeSurgeZ {
			surges++
		}
	}
	return float64(surges) / float64(len(volume))
}
