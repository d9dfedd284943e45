package insight

import "github.com/tradehunter/market-analyzer/internal/model"

// Recommend derives the per-symbol strategy configuration record. Rules
// overwrite the defaults in table order; the last applicable rule wins for
// scalar fields while condition/consideration labels accumulate.
func Recommend(symbols []string, in Inputs) map[string]*model.Recommendation {
	recs := make(map[string]*model.Recommendation, len(symbols))
	for _, sym := range symbols {
		rec := &model.Recommendation{
			PrimaryStrategy:    "momentum",
			PositionSizing:     "normal",
			RiskMultiplier:     1.0,
			StopLossAdjustment: 1.0,
			OptimalTimeframes:  []string{"1h", "4h", "1d"},
		}

		if vol, ok := in.Volatility[sym]; ok {
			if vol["volatility_percentile"] > 75 {
				rec.PositionSizing = "reduced"
				rec.RiskMultiplier = 0.6
				rec.StopLossAdjustment = 1.5
				rec.AvoidConditions = append(rec.AvoidConditions, "earnings_week")
			}
			if vol["volatility_clustering"] > 0 {
				rec.SpecialConsiderations = append(rec.SpecialConsiderations, "volatility_clustering_detected")
				rec.OptimalTimeframes = []string{"5m", "15m", "1h"}
			}
		}

		if beta, ok := in.Beta[sym]; ok {
			if beta["beta"] > 1.5 {
				rec.PrimaryStrategy = "momentum"
				rec.SpecialConsiderations = append(rec.SpecialConsiderations, "high_beta_amplified_moves")
			} else if beta["beta"] < 0.7 {
				rec.PrimaryStrategy = "mean_reversion"
				rec.SpecialConsiderations = append(rec.SpecialConsiderations, "defensive_low_beta")
			}
			if beta["beta_asymmetry"] > 0.2 {
				rec.SpecialConsiderations = append(rec.SpecialConsiderations, "bull_market_outperformer")
			}
		}

		if corr, ok := in.BenchmarkCorrelations[sym]; ok {
			if corr > 0.8 {
				rec.AvoidConditions = append(rec.AvoidConditions, "market_uncertainty", "vix_spike")
				rec.SpecialConsiderations = append(rec.SpecialConsiderations, "market_timing_critical")
			} else if corr < 0.3 {
				rec.SpecialConsiderations = append(rec.SpecialConsiderations, "idiosyncratic_risk_dominant")
				rec.PositionSizing = "increased"
				rec.RiskMultiplier = 1.3
			}
		}

		recs[sym] = rec
	}
	return recs
}
