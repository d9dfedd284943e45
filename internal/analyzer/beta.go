package analyzer

import (
	"github.com/tradehunter/market-analyzer/internal/model"
	"github.com/tradehunter/market-analyzer/internal/stats"
)

// minRegimeObservations is the qualifying-day threshold below which the
// conditional (upside/downside) beta is reported as 0.
const minRegimeObservations = 10

// CorrelationMatrix computes the pairwise Pearson correlation matrix across
// the configured symbols plus each symbol's correlation to the benchmark.
func (a *Analyzer) CorrelationMatrix() (*model.CorrelationMatrix, map[string]float64, error) {
	if err := a.ensureData(); err != nil {
		return nil, nil, err
	}

	matrix := &model.CorrelationMatrix{
		Symbols: a.symbols,
		Values:  make([][]float64, len(a.symbols)),
	}
	for i, si := range a.symbols {
		matrix.Values[i] = make([]float64, len(a.symbols))
		ci, oki := a.returns.Column(si)
		for j, sj := range a.symbols {
			cj, okj := a.returns.Column(sj)
			switch {
			case i == j:
				matrix.Values[i][j] = 1
			case oki && okj:
				matrix.Values[i][j] = stats.Correlation(ci, cj)
			}
		}
	}

	benchCorrs := make(map[string]float64)
	if bench, ok := a.returns.Column(a.benchmark); ok {
		for _, sym := range a.symbols {
			if sym == a.benchmark {
				continue
			}
			if col, ok := a.returns.Column(sym); ok {
				benchCorrs[sym] = stats.Correlation(col, bench)
			}
		}
	}
	return matrix, benchCorrs, nil
}

// BetaMetrics decomposes each symbol's sensitivity to the benchmark: beta,
// annualized Jensen's alpha, R-squared, and the conditional betas computed
// over up-market and down-market days only.
func (a *Analyzer) BetaMetrics() (map[string]model.MetricRecord, error) {
	if err := a.ensureData(); err != nil {
		return nil, err
	}

	bench, ok := a.returns.Column(a.benchmark)
	if !ok {
		a.log.Warn().Str("benchmark", a.benchmark).Msg("benchmark not available, skipping beta metrics")
		return map[string]model.MetricRecord{}, nil
	}

	benchVar := stats.Variance(bench)
	metrics := make(map[string]model.MetricRecord)
	for _, sym := range a.symbols {
		if sym == a.benchmark {
			continue
		}
		rets, ok := a.returns.Column(sym)
		if !ok {
			continue
		}

		beta := 0.0
		if benchVar != 0 {
			beta = stats.Covariance(rets, bench) / benchVar
		}
		alpha := stats.Mean(rets)*stats.TradingDaysPerYear - beta*stats.Mean(bench)*stats.TradingDaysPerYear
		corr := stats.Correlation(rets, bench)

		upBeta := conditionalBeta(rets, bench, func(b float64) bool { return b > 0 })
		downBeta := conditionalBeta(rets, bench, func(b float64) bool { return b < 0 })

		metrics[sym] = model.MetricRecord{
			"beta":             beta,
			"alpha_annualized": alpha,
			"r_squared":        corr * corr,
			"upside_beta":      upBeta,
			"downside_beta":    downBeta,
			"beta_asymmetry":   upBeta - downBeta,
		}
	}
	return metrics, nil
}

// conditionalBeta restricts the covariance/variance computation to the days
// the benchmark return qualifies. Fewer than minRegimeObservations+1
// qualifying days yields 0.
func conditionalBeta(rets, bench []float64, qualifies func(float64) bool) float64 {
	var sub, subBench []float64
	for i, b := range bench {
		if qualifies(b) {
			sub = append(sub, rets[i])
			subBench = append(subBench, b)
		}
	}
	if len(sub) <= minRegimeObservations {
		return 0
	}
	v := stats.Variance(subBench)
	if v == 0 {
		return 0
	}
	return stats.Covariance(sub, subBench) / v
}
