package model

// MetricRecord maps a metric name to its scalar value for one symbol.
// Records are produced fresh on each call and never persisted.
type MetricRecord map[string]float64

// CorrelationMatrix holds pairwise Pearson correlations across symbols.
type CorrelationMatrix struct {
	Symbols []string
	Values  [][]float64
}

// At returns the correlation between the i-th and j-th symbols.
func (m *CorrelationMatrix) At(i, j int) float64 { return m.Values[i][j] }

// Lookup returns the correlation between two symbols by name.
func (m *CorrelationMatrix) Lookup(a, b string) (float64, bool) {
	ia, ib := -1, -1
	for i, s := range m.Symbols {
		if s == a {
			ia = i
		}
		if s == b {
			ib = i
		}
	}
	if ia < 0 || ib < 0 {
		return 0, false
	}
	return m.Values[ia][ib], true
}

// Recommendation is the strategy configuration derived for one symbol.
type Recommendation struct {
	PrimaryStrategy       string
	PositionSizing        string
	RiskMultiplier        float64
	StopLossAdjustment    float64
	OptimalTimeframes     []string
	AvoidConditions       []string
	SpecialConsiderations []string
}
