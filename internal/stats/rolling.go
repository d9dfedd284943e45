package stats

import "math"

// RollingStd computes the trailing sample standard deviation over a window.
// The result has the same length as the input; positions with fewer than
// window observations behind them are NaN.
func RollingStd(data []float64, window int) []float64 {
	out := make([]float64, len(data))
	for i := range data {
		if window <= 1 || i < window-1 {
			out[i] = math.NaN()
			continue
		}
		out[i] = StdDev(data[i-window+1 : i+1])
	}
	return out
}

// RollingMean computes the trailing mean over a window, NaN-padded like RollingStd.
func RollingMean(data []float64, window int) []float64 {
	out := make([]float64, len(data))
	for i := range data {
		if window <= 0 || i < window-1 {
			out[i] = math.NaN()
			continue
		}
		out[i] = Mean(data[i-window+1 : i+1])
	}
	return out
}

// DropNaN returns the defined values of a NaN-padded series.
func DropNaN(data []float64) []float64 {
	out := make([]float64, 0, len(data))
	for _, v := range data {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
