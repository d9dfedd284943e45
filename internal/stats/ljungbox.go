package stats

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// LjungBoxPValue runs the Ljung-Box portmanteau test for autocorrelation up
// to the given lag count and returns the p-value at that lag. It errors when
// the series is too short or has zero variance; the caller decides what a
// missing test result means.
func LjungBoxPValue(series []float64, lags int) (float64, error) {
	if lags <= 0 {
		return 0, errors.New("lags must be positive")
	}
	n := len(series)
	if n <= lags+1 {
		return 0, fmt.Errorf("ljung-box: need more than %d observations, got %d", lags+1, n)
	}

	mean := Mean(series)
	var denom float64
	for _, v := range series {
		d := v - mean
		denom += d * d
	}
	if denom == 0 {
		return 0, errors.New("ljung-box: series has zero variance")
	}

	// Q = n(n+2) * sum_{k=1..h} acf(k)^2 / (n-k), chi-squared with h dof.
	var q float64
	for k := 1; k <= lags; k++ {
		var num float64
		for t := k; t < n; t++ {
			num += (series[t] - mean) * (series[t-k] - mean)
		}
		acf := num / denom
		q += acf * acf / float64(n-k)
	}
	q *= float64(n) * float64(n+2)

	chi := distuv.ChiSquared{K: float64(lags)}
	return chi.Survival(q), nil
}
