package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/tradehunter/market-analyzer/internal/model"
)

// Report aggregates one analysis run for rendering and export.
type Report struct {
	GeneratedAt     time.Time
	Symbols         []string
	Benchmark       string
	LookbackDays    int
	Volatility      map[string]model.MetricRecord
	Beta            map[string]model.MetricRecord
	Insights        map[string]string
	Recommendations map[string]*model.Recommendation
}

// Metric ordering inside the report sections. MetricRecord is a map, so the
// rendered order is pinned here.
var (
	volatilityKeys = []string{
		"annualized_volatility",
		"volatility_20d",
		"volatility_60d",
		"volatility_percentile",
		"downside_volatility",
		"upside_downside_ratio",
		"volatility_clustering",
	}
	betaKeys = []string{
		"beta",
		"alpha_annualized",
		"r_squared",
		"upside_beta",
		"downside_beta",
		"beta_asymmetry",
	}
)

// Render serializes the report as a fixed-section plain-text document with
// four-decimal float formatting.
func Render(r *Report) string {
	var b strings.Builder
	rule := strings.Repeat("=", 80)
	sep := strings.Repeat("-", 40)

	b.WriteString(rule + "\n")
	b.WriteString("TRADEHUNTER MARKET ANALYSIS REPORT\n")
	b.WriteString(fmt.Sprintf("Generated: %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("Symbols Analyzed: %s\n", strings.Join(r.Symbols, ", ")))
	b.WriteString(fmt.Sprintf("Benchmark: %s\n", r.Benchmark))
	b.WriteString(fmt.Sprintf("Analysis Period: %d days\n", r.LookbackDays))
	b.WriteString(rule + "\n\n")

	b.WriteString("VOLATILITY ANALYSIS\n")
	b.WriteString(sep + "\n")
	writeMetricSection(&b, r.Symbols, r.Volatility, volatilityKeys)

	b.WriteString("\n\nBETA ANALYSIS\n")
	b.WriteString(sep + "\n")
	writeMetricSection(&b, r.Symbols, r.Beta, betaKeys)

	b.WriteString("\n\nTRADING INSIGHTS\n")
	b.WriteString(sep + "\n")
	for _, sym := range r.Symbols {
		insight, ok := r.Insights[sym]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("\n%s: %s\n", sym, insight))
	}

	b.WriteString("\n\nSTRATEGY RECOMMENDATIONS\n")
	b.WriteString(sep + "\n")
	for _, sym := range r.Symbols {
		rec, ok := r.Recommendations[sym]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("\n%s:\n", sym))
		b.WriteString(fmt.Sprintf("  Primary Strategy: %s\n", rec.PrimaryStrategy))
		b.WriteString(fmt.Sprintf("  Position Sizing: %s\n", rec.PositionSizing))
		b.WriteString(fmt.Sprintf("  Risk Multiplier: %.1f\n", rec.RiskMultiplier))
		b.WriteString(fmt.Sprintf("  Stop Loss Adjustment: %.1f\n", rec.StopLossAdjustment))
		b.WriteString(fmt.Sprintf("  Optimal Timeframes: %s\n", strings.Join(rec.OptimalTimeframes, ", ")))
		if len(rec.AvoidConditions) > 0 {
			b.WriteString(fmt.Sprintf("  Avoid Conditions: %s\n", strings.Join(rec.AvoidConditions, ", ")))
		}
		if len(rec.SpecialConsiderations) > 0 {
			b.WriteString(fmt.Sprintf("  Special Considerations: %s\n", strings.Join(rec.SpecialConsiderations, ", ")))
		}
	}

	return b.String()
}

func writeMetricSection(b *strings.Builder, symbols []string, metrics map[string]model.MetricRecord, keys []string) {
	for _, sym := range symbols {
		record, ok := metrics[sym]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("\n%s:\n", sym))
		for _, key := range keys {
			value, ok := record[key]
			if !ok {
				continue
			}
			b.WriteString(fmt.Sprintf("  %s: %.4f\n", key, value))
		}
	}
}
