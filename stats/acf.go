// Package stats holds fit scores, autocorrelation and outlier helpers shared by the trend and
// seasonal components
package stats

import (
	"errors"
	"math"

	"github.com/aouyang1/go-decomposer/floatsunrolled"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var ErrZeroVariance = errors.New("series has zero variance")

// Autocorrelation returns r(lag) for lags 1..maxLag where
//
//	r(l) = sum((y[i]-mean)*(y[i+l]-mean)) / sum((y[i]-mean)^2)
//
// The result at index l-1 corresponds to lag l. Pairs where either value is missing are skipped
// and the mean and denominator only use observed values. Missing values are centered to 0 so
// they drop out of each lagged dot product. The work is O(n*maxLag).
func Autocorrelation(y []float64, maxLag int) ([]float64, error) {
	obs := make([]float64, 0, len(y))
	for _, v := range y {
		if !math.IsNaN(v) {
			obs = append(obs, v)
		}
	}
	if len(obs) == 0 {
		return nil, ErrNoObservations
	}

	if floats.Max(obs) == floats.Min(obs) {
		return nil, ErrZeroVariance
	}

	mean := stat.Mean(obs, nil)
	centered := floatsunrolled.CenterTo(nil, y, mean)
	denom := floatsunrolled.Dot(centered, centered)

	if maxLag > len(y)-1 {
		maxLag = len(y) - 1
	}
	if maxLag < 1 {
		return []float64{}, nil
	}

	acf := make([]float64, maxLag)
	for lag := 1; lag <= maxLag; lag++ {
		acf[lag-1] = floatsunrolled.LagDot(centered, lag) / denom
	}
	return acf, nil
}
