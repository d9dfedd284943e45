// Package insight turns metric records into heuristic textual judgments and
// strategy recommendations via fixed threshold tables. Evaluation is pure:
// a missing metric record means "no signal", never an error.
package insight

import (
	"math"
	"strings"

	"github.com/tradehunter/market-analyzer/internal/model"
)

// Inputs bundles the metric outputs the rule tables evaluate.
type Inputs struct {
	Volatility            map[string]model.MetricRecord
	Beta                  map[string]model.MetricRecord
	BenchmarkCorrelations map[string]float64
	Volume                map[string]model.MetricRecord
}

// NoSignal is the sentinel insight for a symbol that triggers no rule.
const NoSignal = "NORMAL MARKET BEHAVIOR"

// Generate evaluates the insight rule table per symbol. All triggered labels
// accumulate in rule order, joined by " | ".
func Generate(symbols []string, in Inputs) map[string]string {
	insights := make(map[string]string, len(symbols))
	for _, sym := range symbols {
		var parts []string

		if vol, ok := in.Volatility[sym]; ok {
			if vol["volatility_percentile"] > 80 {
				parts = append(parts, "HIGH VOLATILITY REGIME - Consider reduced position sizes")
			} else if vol["volatility_percentile"] < 20 {
				parts = append(parts, "LOW VOLATILITY REGIME - Potential for volatility expansion")
			}
			if vol["upside_downside_ratio"] > 2 {
				parts = append(parts, "ASYMMETRIC RISK - More upside than downside volatility")
			}
		}

		if corr, ok := in.BenchmarkCorrelations[sym]; ok {
			if corr > 0.8 {
				parts = append(parts, "HIGH MARKET CORRELATION - Market timing crucial")
			} else if corr < 0.3 {
				parts = append(parts, "LOW MARKET CORRELATION - Stock-specific factors dominate")
			}
		}

		if beta, ok := in.Beta[sym]; ok {
			if beta["beta"] > 1.5 {
				parts = append(parts, "HIGH BETA - Amplified market movements")
			} else if beta["beta"] < 0.5 {
				parts = append(parts, "LOW BETA - Defensive characteristics")
			}
			if beta["beta_asymmetry"] > 0.3 {
				parts = append(parts, "UPSIDE LEVERAGE - Better performance in bull markets")
			}
		}

		if vol, ok := in.Volume[sym]; ok {
			if vol["volume_surge_frequency"] > 0.1 {
				parts = append(parts, "FREQUENT VOLUME SPIKES - News-driven or institutional activity")
			}
			if math.Abs(vol["volume_return_correlation"]) > 0.3 {
				parts = append(parts, "VOLUME-PRICE RELATIONSHIP - Volume confirms price moves")
			}
		}

		if len(parts) == 0 {
			insights[sym] = NoSignal
		} else {
			insights[sym] = strings.Join(parts, " | ")
		}
	}
	return insights
}
