package analyzer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syntheticBench builds a deterministic benchmark return series with plenty
// of both up and down days.
func syntheticBench(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 0.01*math.Sin(float64(i)*1.3) + 0.002*math.Cos(float64(i)*0.7)
	}
	return out
}

func TestBetaMetrics_ProportionalSeries(t *testing.T) {
	const k = 3.0
	bench := syntheticBench(120)
	stock := make([]float64, len(bench))
	for i, b := range bench {
		stock[i] = k * b
	}

	a := newTestAnalyzer([]string{"AAA"}, "SPY", map[string][]float64{
		"AAA": stock,
		"SPY": bench,
	}, Options{})

	metrics, err := a.BetaMetrics()
	require.NoError(t, err)
	record, ok := metrics["AAA"]
	require.True(t, ok)

	assert.InDelta(t, k, record["beta"], 1e-9)
	assert.InDelta(t, 0.0, record["alpha_annualized"], 1e-9)
	assert.InDelta(t, 1.0, record["r_squared"], 1e-9)
	assert.InDelta(t, k, record["upside_beta"], 1e-9)
	assert.InDelta(t, k, record["downside_beta"], 1e-9)
	assert.InDelta(t, 0.0, record["beta_asymmetry"], 1e-9)
}

func TestBetaMetrics_InsufficientRegimeObservations(t *testing.T) {
	// Benchmark with only 5 up days: upside beta must be exactly 0 while the
	// downside beta is still computed.
	n := 100
	bench := make([]float64, n)
	stock := make([]float64, n)
	for i := range bench {
		if i < 5 {
			bench[i] = 0.01 + 0.001*float64(i)
		} else {
			bench[i] = -0.005 - 0.003*math.Abs(math.Sin(float64(i)))
		}
		stock[i] = 2 * bench[i]
	}

	a := newTestAnalyzer([]string{"AAA"}, "SPY", map[string][]float64{
		"AAA": stock,
		"SPY": bench,
	}, Options{})

	metrics, err := a.BetaMetrics()
	require.NoError(t, err)
	record := metrics["AAA"]

	assert.Equal(t, 0.0, record["upside_beta"])
	assert.InDelta(t, 2.0, record["downside_beta"], 1e-9)
}

func TestBetaMetrics_MissingBenchmark(t *testing.T) {
	a := newTestAnalyzer([]string{"AAA"}, "SPY", map[string][]float64{
		"AAA": syntheticBench(50),
	}, Options{})

	metrics, err := a.BetaMetrics()
	require.NoError(t, err)
	assert.Empty(t, metrics)
}

func TestCorrelationMatrix(t *testing.T) {
	bench := syntheticBench(90)
	inverse := make([]float64, len(bench))
	scaled := make([]float64, len(bench))
	for i, b := range bench {
		inverse[i] = -b
		scaled[i] = 0.5 * b
	}

	a := newTestAnalyzer([]string{"AAA", "BBB"}, "SPY", map[string][]float64{
		"AAA": scaled,
		"BBB": inverse,
		"SPY": bench,
	}, Options{})

	matrix, benchCorrs, err := a.CorrelationMatrix()
	require.NoError(t, err)

	n := len(matrix.Symbols)
	for i := 0; i < n; i++ {
		assert.Equal(t, 1.0, matrix.At(i, i))
		for j := 0; j < n; j++ {
			assert.InDelta(t, matrix.At(j, i), matrix.At(i, j), 1e-12)
		}
	}

	require.Contains(t, benchCorrs, "AAA")
	require.Contains(t, benchCorrs, "BBB")
	assert.NotContains(t, benchCorrs, "SPY")
	assert.InDelta(t, 1.0, benchCorrs["AAA"], 1e-9)
	assert.InDelta(t, -1.0, benchCorrs["BBB"], 1e-9)
}
