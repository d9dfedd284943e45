package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// TradingDaysPerYear is the annualization base for daily series.
const TradingDaysPerYear = 252

// Mean calculates the arithmetic mean of a slice of float64 values.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the sample standard deviation of a slice of float64 values.
func StdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.StdDev(data, nil)
}

// Variance calculates the sample variance of a slice of float64 values.
func Variance(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.Variance(data, nil)
}

// Covariance calculates the sample covariance between two equal-length datasets.
func Covariance(x, y []float64) float64 {
	if len(x) < 2 || len(x) != len(y) {
		return 0
	}
	return stat.Covariance(x, y, nil)
}

// Correlation calculates the Pearson correlation coefficient between two datasets.
func Correlation(x, y []float64) float64 {
	if len(x) < 2 || len(x) != len(y) {
		return 0
	}
	return stat.Correlation(x, y, nil)
}

// AnnualizedVolatility converts the sample std of daily returns to annual terms.
func AnnualizedVolatility(dailyReturns []float64) float64 {
	return StdDev(dailyReturns) * math.Sqrt(TradingDaysPerYear)
}

// Returns converts a price series to percentage returns.
// Returns[i] = (Price[i+1] - Price[i]) / Price[i].
func Returns(prices []float64) []float64 {
	if len(prices) < 2 {
		return []float64{}
	}
	out := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] != 0 {
			out[i-1] = (prices[i] - prices[i-1]) / prices[i-1]
		}
	}
	return out
}

// Median returns the median of the dataset with midpoint interpolation.
func Median(data []float64) float64 {
	n := len(data)
	if n == 0 {
		return 0
	}
	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// PercentileOfScore returns the percentile rank of score within dist,
// averaging the strict (<) and weak (<=) ranks so exact ties land halfway.
func PercentileOfScore(dist []float64, score float64) float64 {
	if len(dist) == 0 {
		return 0
	}
	var strict, weak float64
	for _, v := range dist {
		if v < score {
			strict++
		}
		if v <= score {
			weak++
		}
	}
	return (strict + weak) / (2 * float64(len(dist))) * 100
}

// LinearRegression fits y = intercept + slope*x by ordinary least squares
// and also returns the Pearson correlation of the fit.
func LinearRegression(x, y []float64) (slope, intercept, r float64) {
	if len(x) < 2 || len(x) != len(y) {
		return 0, 0, 0
	}
	intercept, slope = stat.LinearRegression(x, y, nil, false)
	r = stat.Correlation(x, y, nil)
	return slope, intercept, r
}

// TrendStrength fits the trailing window of the series against its index
// and returns slope scaled by R-squared, so noisy fits count for less.
func TrendStrength(series []float64, window int) float64 {
	if len(series) < 2 {
		return 0
	}
	tail := series
	if window > 0 && len(tail) > window {
		tail = tail[len(tail)-window:]
	}
	x := make([]float64, len(tail))
	for i := range x {
		x[i] = float64(i)
	}
	slope, _, r := LinearRegression(x, tail)
	if math.IsNaN(slope) || math.IsNaN(r) {
		return 0
	}
	return slope * r * r
}
